package backend

import (
	"context"

	"gymnexa/models"
)

// Unconfigured variants stand in when no managed service is set up. Every
// operation fails with ErrUnconfigured instead of silently doing nothing.

type UnconfiguredIdentity struct{}

func (UnconfiguredIdentity) Configured() bool { return false }

func (UnconfiguredIdentity) SignInWithPassword(context.Context, string, string) (*models.Identity, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredIdentity) CreateAccount(context.Context, string, string) (*models.Identity, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredIdentity) SignInWithGoogle(context.Context, string) (*models.Identity, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredIdentity) SignOut(context.Context, string) error { return ErrUnconfigured }

func (UnconfiguredIdentity) OnAuthStateChanged(AuthStateListener) func() { return func() {} }

type UnconfiguredProfiles struct{}

func (UnconfiguredProfiles) Configured() bool { return false }

func (UnconfiguredProfiles) Get(context.Context, string) (*models.UserProfile, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredProfiles) Create(context.Context, *models.UserProfile) error {
	return ErrUnconfigured
}

func (UnconfiguredProfiles) Update(context.Context, string, models.ProfileUpdate) error {
	return ErrUnconfigured
}

type UnconfiguredBookings struct{}

func (UnconfiguredBookings) Configured() bool { return false }

func (UnconfiguredBookings) List(context.Context, BookingQuery) ([]models.Booking, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredBookings) Get(context.Context, string) (*models.Booking, error) {
	return nil, ErrUnconfigured
}

func (UnconfiguredBookings) Create(context.Context, *models.Booking) error { return ErrUnconfigured }

func (UnconfiguredBookings) Delete(context.Context, string) error { return ErrUnconfigured }

type UnconfiguredObjects struct{}

func (UnconfiguredObjects) Configured() bool { return false }

func (UnconfiguredObjects) Upload(context.Context, string, File) (string, error) {
	return "", ErrUnconfigured
}
