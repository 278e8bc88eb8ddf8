package identity

import (
	"context"
	"fmt"

	"gymnexa/models"

	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// ToolkitClient signs members in and up against the Identity Toolkit relying-party API.
type ToolkitClient struct {
	svc *identitytoolkit.Service
}

// NewToolkitClient builds the REST client authenticated by the web API key.
func NewToolkitClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*ToolkitClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("identity: failed to create toolkit service: %w", err)
	}
	return &ToolkitClient{svc: svc}, nil
}

func (c *ToolkitClient) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	resp, err := c.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &models.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		Provider:    models.ProviderPassword,
	}, nil
}

func (c *ToolkitClient) SignUp(ctx context.Context, email, password string) (*models.Identity, error) {
	resp, err := c.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &models.Identity{
		UID:      resp.LocalId,
		Email:    resp.Email,
		Provider: models.ProviderPassword,
	}, nil
}
