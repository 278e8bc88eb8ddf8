// Package backendtest provides in-memory backends for tests.
package backendtest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gymnexa/backend"
	"gymnexa/models"

	"github.com/google/uuid"
)

// Identity is an in-memory identity provider. Errors set on the struct are
// returned by the next matching call.
type Identity struct {
	backend.Notifier

	mu        sync.Mutex
	accounts  map[string]account
	google    map[string]models.Identity
	SignInErr error
	CreateErr error
	SignedOut []string
}

type account struct {
	password string
	identity models.Identity
}

func NewIdentity() *Identity {
	return &Identity{accounts: map[string]account{}, google: map[string]models.Identity{}}
}

func (f *Identity) Configured() bool { return true }

// AddAccount registers a password account.
func (f *Identity) AddAccount(uid, email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[strings.ToLower(email)] = account{password: password, identity: models.Identity{
		UID: uid, Email: email, Provider: models.ProviderPassword,
	}}
}

// AddGoogleToken makes token verify to the given identity.
func (f *Identity) AddGoogleToken(token string, id models.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id.Provider = models.ProviderGoogle
	f.google[token] = id
}

func (f *Identity) SignInWithPassword(ctx context.Context, email, password string) (*models.Identity, error) {
	f.mu.Lock()
	if err := f.SignInErr; err != nil {
		f.mu.Unlock()
		return nil, err
	}
	acc, ok := f.accounts[strings.ToLower(email)]
	f.mu.Unlock()
	if !ok {
		return nil, &backend.AuthError{Code: backend.CodeUserNotFound, Err: fmt.Errorf("fake identity: no account for %s", email)}
	}
	if acc.password != password {
		return nil, &backend.AuthError{Code: backend.CodeWrongPassword, Err: fmt.Errorf("fake identity: wrong password")}
	}
	id := acc.identity
	f.Notify(ctx, id.UID, &id)
	return &id, nil
}

func (f *Identity) CreateAccount(ctx context.Context, email, password string) (*models.Identity, error) {
	f.mu.Lock()
	if err := f.CreateErr; err != nil {
		f.mu.Unlock()
		return nil, err
	}
	key := strings.ToLower(email)
	if _, exists := f.accounts[key]; exists {
		f.mu.Unlock()
		return nil, &backend.AuthError{Code: backend.CodeEmailAlreadyInUse, Err: fmt.Errorf("fake identity: %s exists", email)}
	}
	id := models.Identity{UID: uuid.NewString(), Email: email, Provider: models.ProviderPassword}
	f.accounts[key] = account{password: password, identity: id}
	f.mu.Unlock()
	f.Notify(ctx, id.UID, &id)
	return &id, nil
}

func (f *Identity) SignInWithGoogle(ctx context.Context, idToken string) (*models.Identity, error) {
	f.mu.Lock()
	id, ok := f.google[idToken]
	f.mu.Unlock()
	if !ok {
		return nil, &backend.AuthError{Code: backend.CodeInvalidCredential, Err: fmt.Errorf("fake identity: bad token")}
	}
	f.Notify(ctx, id.UID, &id)
	return &id, nil
}

func (f *Identity) SignOut(ctx context.Context, uid string) error {
	f.mu.Lock()
	f.SignedOut = append(f.SignedOut, uid)
	f.mu.Unlock()
	f.Notify(ctx, uid, nil)
	return nil
}

func (f *Identity) OnAuthStateChanged(fn backend.AuthStateListener) func() {
	return f.Subscribe(fn)
}

// Profiles is an in-memory profile store.
type Profiles struct {
	mu        sync.Mutex
	records   map[string]models.UserProfile
	Updates   []models.ProfileUpdate
	GetErr    error
	CreateErr error
	UpdateErr error
}

func NewProfiles() *Profiles {
	return &Profiles{records: map[string]models.UserProfile{}}
}

func (f *Profiles) Configured() bool { return true }

func (f *Profiles) Get(_ context.Context, uid string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	p, ok := f.records[uid]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *Profiles) Create(_ context.Context, p *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	f.records[p.UID] = *p
	return nil
}

func (f *Profiles) Update(_ context.Context, uid string, u models.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	p, ok := f.records[uid]
	if !ok {
		return backend.ErrNotFound
	}
	u.Apply(&p)
	p.UpdatedAt = time.Now()
	f.records[uid] = p
	f.Updates = append(f.Updates, u)
	return nil
}

// Bookings is an in-memory booking store.
type Bookings struct {
	mu      sync.Mutex
	records map[string]models.Booking
}

func NewBookings() *Bookings {
	return &Bookings{records: map[string]models.Booking{}}
}

func (f *Bookings) Configured() bool { return true }

func (f *Bookings) List(_ context.Context, q backend.BookingQuery) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.records {
		if b.UserID != q.UserID || (q.Date != "" && b.Date != q.Date) {
			continue
		}
		out = append(out, b)
	}
	models.SortBookings(out)
	return out, nil
}

func (f *Bookings) Get(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *Bookings) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now()
	f.records[b.ID] = *b
	return nil
}

func (f *Bookings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return backend.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

// Objects is an in-memory object store. URLs are "mem://{path}".
type Objects struct {
	mu        sync.Mutex
	Blobs     map[string][]byte
	UploadErr error
}

func NewObjects() *Objects {
	return &Objects{Blobs: map[string][]byte{}}
}

func (f *Objects) Configured() bool { return true }

func (f *Objects) Upload(_ context.Context, path string, file backend.File) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return "", f.UploadErr
	}
	data, err := io.ReadAll(file.Body)
	if err != nil {
		return "", err
	}
	f.Blobs[path] = data
	return "mem://" + path, nil
}
