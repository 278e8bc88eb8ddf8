package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"gymnexa/backend"
	"gymnexa/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreBookingRepo implements BookingRepository on a Firestore "bookings" collection.
// Document ids are generated by Firestore and mirrored into Booking.ID.
type FirestoreBookingRepo struct {
	client *firestore.Client
}

func NewFirestoreBookingRepo(client *firestore.Client) BookingRepository {
	return &FirestoreBookingRepo{client: client}
}

func (r *FirestoreBookingRepo) Configured() bool { return true }

func (r *FirestoreBookingRepo) List(ctx context.Context, q backend.BookingQuery) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	query := r.client.Collection(collectionName).Where("userId", "==", q.UserID)
	if q.Date != "" {
		query = query.Where("date", "==", q.Date)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	bookings := []models.Booking{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", q.UserID, err)
		}
		var b models.Booking
		if err := snap.DataTo(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking %s: %w", snap.Ref.ID, err)
		}
		b.ID = snap.Ref.ID
		bookings = append(bookings, b)
	}

	// Equality filters only, so no composite index is needed.
	models.SortBookings(bookings)
	return bookings, nil
}

func (r *FirestoreBookingRepo) Get(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.client.Collection(collectionName).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	var b models.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("failed to decode booking %s: %w", id, err)
	}
	b.ID = snap.Ref.ID
	return &b, nil
}

func (r *FirestoreBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	record := *booking
	record.CreatedAt = time.Time{}
	ref, _, err := r.client.Collection(collectionName).Add(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = ref.ID
	booking.CreatedAt = time.Now().UTC()
	return nil
}

// Delete fails with ErrNotFound for a missing document.
func (r *FirestoreBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.client.Collection(collectionName).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("booking %s: %w", id, backend.ErrNotFound)
		}
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}
