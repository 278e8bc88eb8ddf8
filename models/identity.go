package models

// Identity is the signed-in subject as reported by the identity provider.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Provider    string `json:"provider"` // "password" or "google.com"
}

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google.com"
)
