package identity

import (
	"context"
	"fmt"

	"gymnexa/backend"
	"gymnexa/models"
	"gymnexa/utils"

	"go.uber.org/zap"
)

// FirebaseIdentityProvider implements backend.IdentityProvider. Password flows go
// through the REST client; Google sign-in verifies the ID token from the client popup.
type FirebaseIdentityProvider struct {
	notifier backend.Notifier
	password PasswordClient
	tokens   TokenClient
}

func NewFirebaseIdentityProvider(password PasswordClient, tokens TokenClient) *FirebaseIdentityProvider {
	return &FirebaseIdentityProvider{password: password, tokens: tokens}
}

func (p *FirebaseIdentityProvider) Configured() bool { return true }

func (p *FirebaseIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*models.Identity, error) {
	id, err := p.password.SignIn(ctx, email, password)
	if err != nil {
		return nil, normalize(err)
	}
	p.notifier.Notify(ctx, id.UID, id)
	return id, nil
}

func (p *FirebaseIdentityProvider) CreateAccount(ctx context.Context, email, password string) (*models.Identity, error) {
	id, err := p.password.SignUp(ctx, email, password)
	if err != nil {
		return nil, normalize(err)
	}
	p.notifier.Notify(ctx, id.UID, id)
	return id, nil
}

func (p *FirebaseIdentityProvider) SignInWithGoogle(ctx context.Context, idToken string) (*models.Identity, error) {
	if idToken == "" {
		return nil, &backend.AuthError{Code: backend.CodeInvalidCredential, Err: fmt.Errorf("empty id token")}
	}
	token, err := p.tokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, normalize(err)
	}

	id := &models.Identity{
		UID:      token.UID,
		Provider: token.Firebase.SignInProvider,
	}
	if id.Provider == "" {
		id.Provider = models.ProviderGoogle
	}
	id.Email, _ = token.Claims["email"].(string)
	id.DisplayName, _ = token.Claims["name"].(string)

	if id.Email == "" || id.DisplayName == "" {
		user, err := p.tokens.GetUser(ctx, token.UID)
		if err != nil {
			return nil, normalize(err)
		}
		if id.Email == "" {
			id.Email = user.Email
		}
		if id.DisplayName == "" {
			id.DisplayName = user.DisplayName
		}
	}

	p.notifier.Notify(ctx, id.UID, id)
	return id, nil
}

// SignOut revokes the member's refresh tokens. Listeners see the sign-out even
// when revocation fails, so local state is always cleared.
func (p *FirebaseIdentityProvider) SignOut(ctx context.Context, uid string) error {
	var err error
	if uid != "" {
		if err = p.tokens.RevokeRefreshTokens(ctx, uid); err != nil {
			utils.GetLogger().Warn("failed to revoke refresh tokens", zap.String("uid", uid), zap.Error(err))
			err = normalize(err)
		}
	}
	p.notifier.Notify(ctx, uid, nil)
	return err
}

func (p *FirebaseIdentityProvider) OnAuthStateChanged(fn backend.AuthStateListener) func() {
	return p.notifier.Subscribe(fn)
}
