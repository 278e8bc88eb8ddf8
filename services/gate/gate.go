// Package gate decides which top-level screen a session sees.
package gate

import (
	"errors"
	"fmt"
)

type Screen string

const (
	InstallPrompt     Screen = "install-prompt"
	Login             Screen = "login"
	Signup            Screen = "signup"
	ProfileCompletion Screen = "profile-completion"
	Main              Screen = "main"
)

var ErrInvalidTransition = errors.New("gate: invalid transition")

// Gate holds the logical screen. The install prompt is never stored: it is
// derived from the device on every read so it preempts any state.
type Gate struct {
	State Screen `json:"state"`
}

func New() Gate {
	return Gate{State: Login}
}

// Screen returns the screen to show for d.
func (g Gate) Screen(d Device) Screen {
	if d.Mobile() && !d.Standalone {
		return InstallPrompt
	}
	if g.State == "" {
		return Login
	}
	return g.State
}

func (g *Gate) transition(event string, to Screen, from ...Screen) error {
	for _, s := range from {
		if g.State == s {
			g.State = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, g.State)
}

func (g *Gate) SwitchToSignup() error {
	return g.transition("switch-to-signup", Signup, Login)
}

func (g *Gate) SwitchToLogin() error {
	return g.transition("switch-to-login", Login, Signup)
}

// SignedIn moves to main, or to profile completion when the caller found no profile.
func (g *Gate) SignedIn(needsCompletion bool) error {
	to := Main
	if needsCompletion {
		to = ProfileCompletion
	}
	return g.transition("signed-in", to, Login, Signup, ProfileCompletion)
}

func (g *Gate) CompletionDone() error {
	return g.transition("completion-done", Main, ProfileCompletion)
}

// Skip enters main without authentication (demo mode) from login or signup.
func (g *Gate) Skip() error {
	return g.transition("demo-skip", Main, Login, Signup)
}

// SignedOut always lands on login.
func (g *Gate) SignedOut() {
	g.State = Login
}
