package backend

import "fmt"

// Identity error codes, normalized from the provider's own error strings.
const (
	CodeInvalidEmail      = "auth/invalid-email"
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeEmailAlreadyInUse = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
	CodeUserDisabled      = "auth/user-disabled"
	CodeTooManyRequests   = "auth/too-many-requests"
	CodeInternal          = "auth/internal-error"
)

// AuthError is an identity provider failure carrying a normalized code.
type AuthError struct {
	Code string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
