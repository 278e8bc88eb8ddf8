package booking

import (
	"testing"
	"time"

	"gymnexa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.BookingDateFormat, s)
	require.NoError(t, err)
	return d
}

func TestSelectToggleLaws(t *testing.T) {
	g := NewGrid(day(t, "2025-01-06"))

	require.NoError(t, g.Select("3", models.BookingGymFloor))
	assert.Equal(t, models.BookingGymFloor, g.Get("3"))

	require.NoError(t, g.Select("3", models.BookingGymFloor))
	assert.Equal(t, models.BookingUnset, g.Get("3"), "selecting the same type twice unsets")

	require.NoError(t, g.Select("3", models.BookingGymFloor))
	require.NoError(t, g.Select("3", models.BookingOpen))
	assert.Equal(t, models.BookingOpen, g.Get("3"), "the other type overwrites")
	assert.Len(t, g.Cells, 1)
}

func TestSelectRejectsUnknownInput(t *testing.T) {
	g := NewGrid(day(t, "2025-01-06"))
	assert.ErrorIs(t, g.Select("99", models.BookingOpen), ErrUnknownSlot)
	assert.ErrorIs(t, g.Select("1", models.BookingType("yoga")), ErrInvalidType)
	assert.ErrorIs(t, g.Select("1", models.BookingUnset), ErrInvalidType)
	assert.False(t, g.HasSelections())
}

func TestDayChangeEmptiesGrid(t *testing.T) {
	g := NewGrid(day(t, "2025-01-31"))
	require.NoError(t, g.Select("1", models.BookingOpen))
	require.True(t, g.HasSelections())

	g.NextDay()
	assert.Equal(t, "2025-02-01", g.Day)
	assert.Empty(t, g.Cells)
	assert.False(t, g.HasSelections())

	require.NoError(t, g.Select("2", models.BookingGymFloor))
	g.PrevDay()
	g.PrevDay()
	assert.Equal(t, "2025-01-30", g.Day)
	assert.Empty(t, g.Cells)
}

func TestIsToday(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)
	now := time.Date(2025, 1, 6, 0, 30, 0, 0, rome)

	g := NewGrid(now)
	assert.True(t, g.IsToday(now))
	g.NextDay()
	assert.False(t, g.IsToday(now))
	g.PrevDay()
	assert.True(t, g.IsToday(now.Add(23*time.Hour)))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Lunedì 5 Gennaio", NewGrid(day(t, "2026-01-05")).Title())
	assert.Equal(t, "Domenica 31 Agosto", NewGrid(day(t, "2025-08-31")).Title())
}

func TestSelectionsInCatalogOrder(t *testing.T) {
	g := NewGrid(day(t, "2025-01-06"))
	require.NoError(t, g.Select("10", models.BookingOpen))
	require.NoError(t, g.Select("2", models.BookingGymFloor))

	sel := g.Selections()
	require.Len(t, sel, 2)
	assert.Equal(t, "2", sel[0].SlotID)
	assert.Equal(t, "10:30 - 11:30", sel[0].Label)
	assert.Equal(t, "10", sel[1].SlotID)
}

func TestConfirmOnlyTraces(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGrid(day(t, "2025-01-06"))
	require.NoError(t, g.Select("1", models.BookingOpen))

	g.Confirm(zap.New(core))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Prenotazioni", logs.All()[0].Message)
	assert.True(t, g.HasSelections(), "confirm keeps the selections")
}
