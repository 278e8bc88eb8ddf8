package booking

import (
	"context"
	"testing"

	"gymnexa/backend"
	"gymnexa/backend/backendtest"
	"gymnexa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsCreateAndList(t *testing.T) {
	s := NewService(backendtest.NewBookings())
	ctx := context.Background()

	_, err := s.Create(ctx, "u1", NewBooking{Date: "2025-01-06", TimeSlot: "10", Type: models.BookingOpen})
	require.NoError(t, err)
	b, err := s.Create(ctx, "u1", NewBooking{Date: "2025-01-06", TimeSlot: "2", Type: models.BookingGymFloor})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	_, err = s.Create(ctx, "u2", NewBooking{Date: "2025-01-06", TimeSlot: "2", Type: models.BookingOpen})
	require.NoError(t, err)

	list, err := s.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].TimeSlot)

	list, err = s.List(ctx, "u1", "2025-01-07")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordsCreateValidates(t *testing.T) {
	s := NewService(backendtest.NewBookings())
	ctx := context.Background()

	_, err := s.Create(ctx, "u1", NewBooking{Date: "06/01/2025", TimeSlot: "1", Type: models.BookingOpen})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = s.Create(ctx, "u1", NewBooking{Date: "2025-01-06", TimeSlot: "0", Type: models.BookingOpen})
	assert.ErrorIs(t, err, ErrUnknownSlot)
	_, err = s.Create(ctx, "u1", NewBooking{Date: "2025-01-06", TimeSlot: "1", Type: "spinning"})
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = s.List(ctx, "u1", "yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRecordsDeleteChecksOwner(t *testing.T) {
	s := NewService(backendtest.NewBookings())
	ctx := context.Background()

	b, err := s.Create(ctx, "u1", NewBooking{Date: "2025-01-06", TimeSlot: "1", Type: models.BookingOpen})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(ctx, "u2", b.ID), ErrNotOwner)
	require.NoError(t, s.Delete(ctx, "u1", b.ID))
	assert.ErrorIs(t, s.Delete(ctx, "u1", b.ID), ErrNotFound)
}

func TestRecordsUnconfigured(t *testing.T) {
	s := NewService(backend.UnconfiguredBookings{})
	_, err := s.List(context.Background(), "u1", "")
	assert.ErrorIs(t, err, backend.ErrUnconfigured)
}
