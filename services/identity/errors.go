package identity

import (
	"errors"
	"strings"

	"gymnexa/backend"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
)

// restCodes maps Identity Toolkit error messages to normalized codes.
var restCodes = map[string]string{
	"EMAIL_NOT_FOUND":             backend.CodeUserNotFound,
	"INVALID_PASSWORD":            backend.CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   backend.CodeInvalidCredential,
	"INVALID_EMAIL":               backend.CodeInvalidEmail,
	"MISSING_EMAIL":               backend.CodeInvalidEmail,
	"EMAIL_EXISTS":                backend.CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":               backend.CodeWeakPassword,
	"USER_DISABLED":               backend.CodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": backend.CodeTooManyRequests,
}

// normalize wraps a provider failure into a *backend.AuthError.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var authErr *backend.AuthError
	if errors.As(err, &authErr) {
		return err
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if code, ok := restCodes[restMessage(apiErr.Message)]; ok {
			return &backend.AuthError{Code: code, Err: err}
		}
		for _, item := range apiErr.Errors {
			if code, ok := restCodes[restMessage(item.Message)]; ok {
				return &backend.AuthError{Code: code, Err: err}
			}
		}
	}

	switch {
	case auth.IsIDTokenInvalid(err), auth.IsIDTokenExpired(err), auth.IsIDTokenRevoked(err):
		return &backend.AuthError{Code: backend.CodeInvalidCredential, Err: err}
	case auth.IsUserNotFound(err):
		return &backend.AuthError{Code: backend.CodeUserNotFound, Err: err}
	}
	return &backend.AuthError{Code: backend.CodeInternal, Err: err}
}

// restMessage strips the detail suffix, e.g. "WEAK_PASSWORD : Password should be ...".
func restMessage(msg string) string {
	if i := strings.Index(msg, ":"); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}
