// Package backend declares the managed services the server delegates to:
// the identity provider, the document store and the object store.
package backend

import (
	"context"
	"errors"
	"io"

	"gymnexa/models"
)

var (
	// ErrUnconfigured is returned by every capability that has no backing service.
	ErrUnconfigured = errors.New("backend: service not configured")
	// ErrNotFound is returned when an update or delete targets a missing record.
	ErrNotFound = errors.New("backend: record not found")
)

// AuthStateListener is notified with the new identity, or nil on sign-out.
type AuthStateListener func(ctx context.Context, uid string, id *models.Identity)

// IdentityProvider authenticates members. Credentials never reach our own storage.
type IdentityProvider interface {
	Configured() bool
	SignInWithPassword(ctx context.Context, email, password string) (*models.Identity, error)
	CreateAccount(ctx context.Context, email, password string) (*models.Identity, error)
	// SignInWithGoogle verifies an ID token obtained by the client popup flow.
	SignInWithGoogle(ctx context.Context, idToken string) (*models.Identity, error)
	SignOut(ctx context.Context, uid string) error
	// OnAuthStateChanged registers fn and returns a function that removes it.
	OnAuthStateChanged(fn AuthStateListener) (unsubscribe func())
}

// ProfileStore persists member profiles keyed by uid.
type ProfileStore interface {
	Configured() bool
	// Get returns nil, nil when no profile exists for uid.
	Get(ctx context.Context, uid string) (*models.UserProfile, error)
	// Create writes the full record, replacing any existing one.
	Create(ctx context.Context, profile *models.UserProfile) error
	// Update merges the set fields and stamps updatedAt with the server time.
	Update(ctx context.Context, uid string, update models.ProfileUpdate) error
}

// BookingQuery filters stored bookings. Date is optional.
type BookingQuery struct {
	UserID string
	Date   string
}

// BookingStore persists booking records.
type BookingStore interface {
	Configured() bool
	List(ctx context.Context, q BookingQuery) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}

// File is an upload payload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStore stores binary uploads and resolves a retrievable URL for them.
type ObjectStore interface {
	Configured() bool
	Upload(ctx context.Context, path string, file File) (url string, err error)
}
