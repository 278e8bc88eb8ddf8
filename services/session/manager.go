package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymnexa/backend"
	"gymnexa/models"
	"gymnexa/services/gate"
	"gymnexa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidToken = errors.New("session: invalid token")

// Manager creates, resumes and tears down sessions, and keeps each session's
// identity and cached profile in step with the identity provider.
type Manager struct {
	store       Store
	profiles    backend.ProfileStore
	location    *time.Location
	ttl         time.Duration
	now         func() time.Time
	unsubscribe func()
}

func NewManager(store Store, identity backend.IdentityProvider, profiles backend.ProfileStore, loc *time.Location, ttl time.Duration) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	m := &Manager{store: store, profiles: profiles, location: loc, ttl: ttl, now: time.Now}
	m.unsubscribe = identity.OnAuthStateChanged(m.onAuthStateChanged)
	return m
}

// Close detaches the manager from the identity provider.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Now is the current time in the gym's time zone.
func (m *Manager) Now() time.Time {
	return m.now().In(m.location)
}

// Start creates and stores a new session and returns it with its bearer token.
func (m *Manager) Start(ctx context.Context, device gate.Device) (*Session, string, error) {
	s := New(uuid.NewString(), device, m.Now())
	if err := m.store.Save(ctx, s); err != nil {
		return nil, "", err
	}
	token, err := m.Token(s)
	if err != nil {
		return nil, "", err
	}
	utils.GetLogger().Debug("session started", zap.String("sessionID", s.ID))
	return s, token, nil
}

// Token issues a bearer token for s valid for one TTL from now.
func (m *Manager) Token(s *Session) (string, error) {
	token, err := utils.GenerateToken(s.ID, m.ttl)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// Resume loads the session addressed by token.
func (m *Manager) Resume(ctx context.Context, token string) (*Session, error) {
	id, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	s, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ensure(m.Now())
	return s, nil
}

func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Save(ctx, s)
}

// ReloadProfile refreshes the cached profile. On failure the previous value is kept.
func (m *Manager) ReloadProfile(ctx context.Context, s *Session) error {
	if !s.SignedIn() {
		return nil
	}
	p, err := m.profiles.Get(ctx, s.UID())
	if err != nil {
		utils.GetLogger().Error("Error loading profile", zap.String("uid", s.UID()), zap.Error(err))
		s.ProfileErr = err
		return err
	}
	s.Profile = p
	s.ProfileErr = nil
	return nil
}

// Teardown deletes s and returns a fresh session at the login screen for the same device.
func (m *Manager) Teardown(ctx context.Context, s *Session) (*Session, string, error) {
	if err := m.store.Delete(ctx, s.ID); err != nil {
		utils.GetLogger().Warn("session teardown could not delete record", zap.String("sessionID", s.ID), zap.Error(err))
	}
	return m.Start(ctx, s.Device)
}

// onAuthStateChanged mirrors provider state into the session carried by ctx.
func (m *Manager) onAuthStateChanged(ctx context.Context, uid string, id *models.Identity) {
	s := FromContext(ctx)
	if s == nil {
		return
	}
	if id == nil {
		s.Identity = nil
		s.Profile = nil
		s.ProfileErr = nil
		return
	}
	s.Identity = id
	s.Demo = false
	s.Profile = nil
	s.ProfileErr = nil
	_ = m.ReloadProfile(ctx, s)
}
