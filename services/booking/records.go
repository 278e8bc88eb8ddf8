package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymnexa/backend"
	"gymnexa/models"
)

var (
	ErrInvalidDate = errors.New("booking: invalid date")
	ErrNotFound    = errors.New("booking: not found")
	ErrNotOwner    = errors.New("booking: not owned by member")
)

// Service gives a member access to their stored booking records. The grid
// never calls it.
type Service struct {
	Bookings backend.BookingStore
}

func NewService(bookings backend.BookingStore) *Service {
	return &Service{Bookings: bookings}
}

// NewBooking is a create request.
type NewBooking struct {
	Date     string             `json:"date" binding:"required"`
	TimeSlot string             `json:"timeSlot" binding:"required"`
	Type     models.BookingType `json:"type" binding:"required"`
}

func (s *Service) List(ctx context.Context, uid, date string) ([]models.Booking, error) {
	if date != "" {
		if _, err := time.Parse(models.BookingDateFormat, date); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
	}
	return s.Bookings.List(ctx, backend.BookingQuery{UserID: uid, Date: date})
}

func (s *Service) Create(ctx context.Context, uid string, req NewBooking) (*models.Booking, error) {
	if _, err := time.Parse(models.BookingDateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	if _, ok := models.SlotByID(req.TimeSlot); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, req.TimeSlot)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(req.Type))
	}

	b := &models.Booking{UserID: uid, Date: req.Date, TimeSlot: req.TimeSlot, Type: req.Type}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a booking owned by uid.
func (s *Service) Delete(ctx context.Context, uid, id string) error {
	b, err := s.Bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if b.UserID != uid {
		return ErrNotOwner
	}
	if err := s.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
