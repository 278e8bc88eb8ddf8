// Package session holds the per-client context: identity, cached profile and
// the state of every screen state machine. A Session is loaded from the store
// at the start of a request and saved back at the end.
package session

import (
	"context"
	"time"

	"gymnexa/models"
	"gymnexa/services/booking"
	"gymnexa/services/gate"
	"gymnexa/services/profile"
	"gymnexa/services/wizard"
)

type Session struct {
	ID         string              `json:"id"`
	Device     gate.Device         `json:"device"`
	Gate       gate.Gate           `json:"gate"`
	Identity   *models.Identity    `json:"identity,omitempty"`
	Demo       bool                `json:"demo"`
	Profile    *models.UserProfile `json:"profile,omitempty"`
	// ProfileErr is the last failed profile read of this request. It is not persisted.
	ProfileErr error `json:"-"`
	AuthError  string              `json:"authError,omitempty"`
	Signup     *wizard.Signup      `json:"signup,omitempty"`
	Completion *wizard.Completion  `json:"completion,omitempty"`
	Editor     *profile.Editor     `json:"editor"`
	Grid       *booking.Grid       `json:"grid"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// New returns a fresh session at the login screen, with the grid on today.
func New(id string, device gate.Device, now time.Time) *Session {
	return &Session{
		ID:        id,
		Device:    device,
		Gate:      gate.New(),
		Editor:    profile.NewEditor(),
		Grid:      booking.NewGrid(now),
		CreatedAt: now,
	}
}

// Screen is the top-level screen to render.
func (s *Session) Screen() gate.Screen {
	return s.Gate.Screen(s.Device)
}

// UID is the signed-in subject, empty when anonymous or in demo mode.
func (s *Session) UID() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.UID
}

func (s *Session) SignedIn() bool { return s.Identity != nil }

// SignupWizard returns the signup wizard, starting one if needed.
func (s *Session) SignupWizard() *wizard.Signup {
	if s.Signup == nil {
		s.Signup = wizard.NewSignup()
	}
	return s.Signup
}

// ensure fills in state machines missing from an older stored record.
func (s *Session) ensure(now time.Time) {
	if s.Editor == nil {
		s.Editor = profile.NewEditor()
	}
	if s.Grid == nil {
		s.Grid = booking.NewGrid(now)
	}
}

type ctxKey struct{}

// WithSession attaches s to ctx so auth-state listeners can update it.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached to ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
