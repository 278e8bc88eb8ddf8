// Package identity implements the identity provider on Firebase Authentication.
package identity

import (
	"context"

	"gymnexa/models"

	"firebase.google.com/go/v4/auth"
)

// PasswordClient performs the email/password flows of the provider's REST API.
type PasswordClient interface {
	SignIn(ctx context.Context, email, password string) (*models.Identity, error)
	SignUp(ctx context.Context, email, password string) (*models.Identity, error)
}

// TokenClient is the subset of the Firebase Admin auth client the provider uses.
// *auth.Client satisfies it.
type TokenClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}
