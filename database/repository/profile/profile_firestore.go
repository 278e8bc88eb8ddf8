package profileRepo

import (
	"context"
	"fmt"
	"time"

	"gymnexa/backend"
	"gymnexa/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProfileRepo implements ProfileRepository on a Firestore "users" collection.
type FirestoreProfileRepo struct {
	client *firestore.Client
}

func NewFirestoreProfileRepo(client *firestore.Client) ProfileRepository {
	return &FirestoreProfileRepo{client: client}
}

func (r *FirestoreProfileRepo) Configured() bool { return true }

func (r *FirestoreProfileRepo) doc(uid string) *firestore.DocumentRef {
	return r.client.Collection(collectionName).Doc(uid)
}

func (r *FirestoreProfileRepo) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", uid, err)
	}
	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", uid, err)
	}
	return &profile, nil
}

// Create sets the document. Zero timestamps are filled in by the server.
func (r *FirestoreProfileRepo) Create(ctx context.Context, profile *models.UserProfile) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	record := *profile
	record.CreatedAt = time.Time{}
	record.UpdatedAt = time.Time{}
	if _, err := r.doc(profile.UID).Set(ctx, record); err != nil {
		return fmt.Errorf("failed to create profile %s: %w", profile.UID, err)
	}
	return nil
}

func (r *FirestoreProfileRepo) Update(ctx context.Context, uid string, update models.ProfileUpdate) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	fields := update.Fields()
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.doc(uid).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("profile %s: %w", uid, backend.ErrNotFound)
		}
		return fmt.Errorf("failed to update profile %s: %w", uid, err)
	}
	return nil
}
