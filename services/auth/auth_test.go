package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymnexa/backend"
	"gymnexa/backend/backendtest"
	"gymnexa/models"
	"gymnexa/services/gate"
	"gymnexa/services/messages"
	"gymnexa/services/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Service, *backendtest.Identity, *backendtest.Profiles, *session.Manager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	identity := backendtest.NewIdentity()
	profiles := backendtest.NewProfiles()
	manager := session.NewManager(session.NewRedisStore(client, time.Hour), identity, profiles, time.UTC, time.Hour)
	t.Cleanup(manager.Close)
	return NewService(identity, manager), identity, profiles, manager
}

func TestLogin(t *testing.T) {
	svc, identity, profiles, manager := setup(t)
	ctx := context.Background()
	identity.AddAccount("u1", "mario@example.it", "secret1")
	require.NoError(t, profiles.Create(ctx, &models.UserProfile{UID: "u1", FirstName: "Mario"}))

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"unknown user", "nobody@example.it", "secret1", messages.UserNotFound},
		{"wrong password", "mario@example.it", "nope", messages.WrongPassword},
		{"ok", "mario@example.it", "secret1", ""},
	}
	sess, _, err := manager.Start(ctx, gate.Device{})
	require.NoError(t, err)
	sess.SignupWizard()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(ctx, sess, tt.email, tt.password)
			assert.Equal(t, tt.message, sess.AuthError)
			if tt.message != "" {
				var aerr *Error
				require.ErrorAs(t, err, &aerr)
				assert.Equal(t, tt.message, aerr.Message)
				assert.Equal(t, gate.Login, sess.Screen())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, gate.Main, sess.Screen())
			assert.Equal(t, "u1", sess.UID())
			assert.Equal(t, "Mario", sess.Profile.FirstName)
			assert.Nil(t, sess.Signup)
		})
	}
}

func TestLoginUnconfigured(t *testing.T) {
	_, _, _, manager := setup(t)
	svc := NewService(backend.UnconfiguredIdentity{}, manager)
	sess := session.New("s", gate.Device{}, time.Now())

	err := svc.Login(context.Background(), sess, "a@b.it", "secret1")
	assert.ErrorIs(t, err, backend.ErrUnconfigured)
	assert.Equal(t, messages.ServiceDisabled, sess.AuthError)
}

func TestGoogleRoutesToCompletionWithoutProfile(t *testing.T) {
	svc, identity, profiles, _ := setup(t)
	ctx := context.Background()
	identity.AddGoogleToken("new", models.Identity{UID: "g1", Email: "anna@example.it", DisplayName: "Anna Maria Bianchi"})
	identity.AddGoogleToken("known", models.Identity{UID: "g2", Email: "luca@example.it"})
	require.NoError(t, profiles.Create(ctx, &models.UserProfile{UID: "g2"}))

	sess := session.New("s1", gate.Device{}, time.Now())
	needs, err := svc.Google(ctx, sess, "new")
	require.NoError(t, err)
	assert.True(t, needs)
	assert.Equal(t, gate.ProfileCompletion, sess.Screen())
	require.NotNil(t, sess.Completion)
	assert.Equal(t, "g1", sess.Completion.UID)

	sess = session.New("s2", gate.Device{}, time.Now())
	require.NoError(t, sess.Gate.SwitchToSignup())
	needs, err = svc.Google(ctx, sess, "known")
	require.NoError(t, err)
	assert.False(t, needs)
	assert.Equal(t, gate.Main, sess.Screen())
	assert.Nil(t, sess.Completion)
}

func TestGoogleProfileReadFailureKeepsStoredProfile(t *testing.T) {
	svc, identity, profiles, _ := setup(t)
	ctx := context.Background()
	identity.AddGoogleToken("known", models.Identity{UID: "g2", Email: "luca@example.it"})
	require.NoError(t, profiles.Create(ctx, &models.UserProfile{UID: "g2", PhotoURL: "mem://profile-photos/g2/me.jpg"}))
	profiles.GetErr = errors.New("document store unavailable")

	sess := session.New("s", gate.Device{}, time.Now())
	needs, err := svc.Google(ctx, sess, "known")
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.False(t, needs)
	assert.Equal(t, messages.LoginFailed, sess.AuthError)
	assert.Equal(t, gate.Login, sess.Screen())
	assert.Nil(t, sess.Completion)
	assert.False(t, sess.SignedIn())
	assert.Equal(t, []string{"g2"}, identity.SignedOut)

	profiles.GetErr = nil
	needs, err = svc.Google(ctx, sess, "known")
	require.NoError(t, err)
	assert.False(t, needs)
	assert.Equal(t, gate.Main, sess.Screen())
	assert.Equal(t, "mem://profile-photos/g2/me.jpg", sess.Profile.PhotoURL)
}

func TestGoogleBadToken(t *testing.T) {
	svc, _, _, _ := setup(t)
	sess := session.New("s", gate.Device{}, time.Now())

	_, err := svc.Google(context.Background(), sess, "forged")
	assert.Error(t, err)
	assert.Equal(t, messages.BadCredentials, sess.AuthError)
	assert.Equal(t, gate.Login, sess.Screen())
}

func TestLogout(t *testing.T) {
	svc, identity, _, manager := setup(t)
	ctx := context.Background()
	identity.AddAccount("u1", "mario@example.it", "secret1")

	sess, token, err := manager.Start(ctx, gate.Device{})
	require.NoError(t, err)
	require.NoError(t, svc.Login(ctx, sess, "mario@example.it", "secret1"))
	require.NoError(t, manager.Save(ctx, sess))

	fresh, freshToken, err := svc.Logout(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, identity.SignedOut)
	assert.Nil(t, sess.Identity)
	assert.Equal(t, gate.Login, fresh.Screen())
	assert.NotEqual(t, token, freshToken)

	_, err = manager.Resume(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
