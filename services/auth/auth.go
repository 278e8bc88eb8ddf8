// Package auth drives sign-in and sign-out for a session.
package auth

import (
	"context"
	"errors"

	"gymnexa/backend"
	"gymnexa/services/gate"
	"gymnexa/services/messages"
	"gymnexa/services/session"
	"gymnexa/services/wizard"
	"gymnexa/utils"

	"go.uber.org/zap"
)

// Error is a failed sign-in with the message for the login screen.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Service signs members in through the identity provider. The session's
// identity and profile are populated by the manager's auth-state listener.
type Service struct {
	Identity backend.IdentityProvider
	Sessions *session.Manager
}

func NewService(identity backend.IdentityProvider, sessions *session.Manager) *Service {
	return &Service{Identity: identity, Sessions: sessions}
}

func loginError(err error) *Error {
	var authErr *backend.AuthError
	if errors.As(err, &authErr) {
		return &Error{Code: authErr.Code, Message: messages.LoginError(authErr.Code), Err: err}
	}
	if errors.Is(err, backend.ErrUnconfigured) {
		return &Error{Message: messages.ServiceDisabled, Err: err}
	}
	return &Error{Message: messages.LoginFailed, Err: err}
}

// Login signs in with email and password and moves the gate to main.
func (s *Service) Login(ctx context.Context, sess *session.Session, email, password string) error {
	sess.AuthError = ""
	if _, err := s.Identity.SignInWithPassword(session.WithSession(ctx, sess), email, password); err != nil {
		utils.GetLogger().Info("login failed", zap.String("email", email), zap.Error(err))
		lerr := loginError(err)
		sess.AuthError = lerr.Message
		return lerr
	}
	sess.Signup = nil
	return sess.Gate.SignedIn(false)
}

// Google verifies a Google ID token. A subject without a stored profile has to
// go through profile completion first.
func (s *Service) Google(ctx context.Context, sess *session.Session, idToken string) (needsCompletion bool, err error) {
	sess.AuthError = ""
	id, err := s.Identity.SignInWithGoogle(session.WithSession(ctx, sess), idToken)
	if err != nil {
		utils.GetLogger().Info("google sign-in failed", zap.Error(err))
		lerr := loginError(err)
		if sess.Gate.State == gate.Signup {
			lerr.Message = messages.SignupError(lerr.Code)
		}
		sess.AuthError = lerr.Message
		return false, lerr
	}

	// Completion only when the store answered that no profile exists.
	if sess.ProfileErr != nil {
		lerr := &Error{Message: messages.LoginFailed, Err: sess.ProfileErr}
		utils.GetLogger().Warn("google sign-in aborted, profile unavailable", zap.String("uid", id.UID), zap.Error(sess.ProfileErr))
		if err := s.Identity.SignOut(session.WithSession(ctx, sess), id.UID); err != nil {
			utils.GetLogger().Warn("sign-out failed", zap.String("uid", id.UID), zap.Error(err))
		}
		sess.Identity, sess.Profile = nil, nil
		sess.AuthError = lerr.Message
		return false, lerr
	}

	sess.Signup = nil
	needsCompletion = sess.Profile == nil
	if needsCompletion {
		sess.Completion = wizard.NewCompletion(*id)
	}
	return needsCompletion, sess.Gate.SignedIn(needsCompletion)
}

// Logout signs out and replaces the session with a fresh one at login.
func (s *Service) Logout(ctx context.Context, sess *session.Session) (*session.Session, string, error) {
	if sess.SignedIn() {
		if err := s.Identity.SignOut(session.WithSession(ctx, sess), sess.UID()); err != nil {
			utils.GetLogger().Warn("sign-out failed", zap.String("uid", sess.UID()), zap.Error(err))
		}
	}
	sess.Gate.SignedOut()
	return s.Sessions.Teardown(ctx, sess)
}
