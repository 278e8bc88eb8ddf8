package backend

import (
	"context"
	"errors"
	"testing"

	"gymnexa/models"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	tests := []struct {
		ns, uid, name, want string
	}{
		{ProfilePhotos, "u1", "me.jpg", "profile-photos/u1/me.jpg"},
		{AthleticDocuments, "u1", "cert.pdf", "athletic-documents/u1/cert.pdf"},
		{AthleticDocuments, "u1", "../../etc/passwd", "athletic-documents/u1/passwd"},
		{ProfilePhotos, "u1", `C:\Users\me\photo.png`, "profile-photos/u1/photo.png"},
		{ProfilePhotos, "u1", "", "profile-photos/u1/file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectPath(tt.ns, tt.uid, tt.name))
	}
}

func TestUnconfiguredVariantsFail(t *testing.T) {
	ctx := context.Background()

	var ip IdentityProvider = UnconfiguredIdentity{}
	assert.False(t, ip.Configured())
	_, err := ip.SignInWithPassword(ctx, "a@b.c", "secret")
	assert.True(t, errors.Is(err, ErrUnconfigured))

	var ps ProfileStore = UnconfiguredProfiles{}
	_, err = ps.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrUnconfigured)
	assert.ErrorIs(t, ps.Update(ctx, "u1", models.ProfileUpdate{}), ErrUnconfigured)

	var bs BookingStore = UnconfiguredBookings{}
	_, err = bs.List(ctx, BookingQuery{UserID: "u1"})
	assert.ErrorIs(t, err, ErrUnconfigured)

	var objs ObjectStore = UnconfiguredObjects{}
	_, err = objs.Upload(ctx, "p", File{})
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestNotifierOrderAndUnsubscribe(t *testing.T) {
	var n Notifier
	var calls []string

	unsubA := n.Subscribe(func(_ context.Context, uid string, _ *models.Identity) { calls = append(calls, "a:"+uid) })
	n.Subscribe(func(_ context.Context, uid string, id *models.Identity) {
		if id == nil {
			calls = append(calls, "b:out")
			return
		}
		calls = append(calls, "b:"+uid)
	})

	n.Notify(context.Background(), "u1", &models.Identity{UID: "u1"})
	unsubA()
	unsubA()
	n.Notify(context.Background(), "u1", nil)

	assert.Equal(t, []string{"a:u1", "b:u1", "b:out"}, calls)
}
