package booking

import (
	"errors"
	"fmt"
	"time"

	"gymnexa/models"

	"go.uber.org/zap"
)

var (
	ErrUnknownSlot = errors.New("booking: unknown time slot")
	ErrInvalidType = errors.New("booking: invalid booking type")
)

var (
	weekdays = [...]string{"Domenica", "Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato"}
	months   = [...]string{"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno", "Luglio",
		"Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre"}
)

// Grid is the in-memory selection state for the visible day. Cells only hold
// set entries; a missing slot is unset. Nothing here is persisted.
type Grid struct {
	Day   string                        `json:"day"`
	Cells map[string]models.BookingType `json:"cells"`
}

// NewGrid starts on the calendar day of now.
func NewGrid(now time.Time) *Grid {
	return &Grid{Day: now.Format(models.BookingDateFormat), Cells: map[string]models.BookingType{}}
}

func (g *Grid) date() time.Time {
	d, err := time.Parse(models.BookingDateFormat, g.Day)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Select toggles slot to t: the same type again unsets it, the other type overwrites.
func (g *Grid) Select(slotID string, t models.BookingType) error {
	if _, ok := models.SlotByID(slotID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, string(t))
	}
	if g.Cells == nil {
		g.Cells = map[string]models.BookingType{}
	}
	if g.Cells[slotID] == t {
		delete(g.Cells, slotID)
		return nil
	}
	g.Cells[slotID] = t
	return nil
}

// Get returns the type selected for slotID, BookingUnset when none.
func (g *Grid) Get(slotID string) models.BookingType {
	return g.Cells[slotID]
}

func (g *Grid) PrevDay() { g.shift(-1) }

func (g *Grid) NextDay() { g.shift(1) }

// shift moves the visible day and drops every selection.
func (g *Grid) shift(days int) {
	g.Day = g.date().AddDate(0, 0, days).Format(models.BookingDateFormat)
	g.Cells = map[string]models.BookingType{}
}

// IsToday compares calendar dates; now should already be in the gym's time zone.
func (g *Grid) IsToday(now time.Time) bool {
	return g.Day == now.Format(models.BookingDateFormat)
}

// Title renders the day as "Lunedì 5 Gennaio".
func (g *Grid) Title() string {
	d := g.date()
	return fmt.Sprintf("%s %d %s", weekdays[d.Weekday()], d.Day(), months[d.Month()-1])
}

func (g *Grid) HasSelections() bool {
	for _, t := range g.Cells {
		if t != models.BookingUnset {
			return true
		}
	}
	return false
}

// Selection is one chosen slot of the visible day.
type Selection struct {
	SlotID string             `json:"slotId"`
	Label  string             `json:"label"`
	Type   models.BookingType `json:"type"`
}

// Selections lists set cells in catalog order.
func (g *Grid) Selections() []Selection {
	out := []Selection{}
	for _, s := range models.TimeSlots {
		if t := g.Cells[s.ID]; t != models.BookingUnset {
			out = append(out, Selection{SlotID: s.ID, Label: s.Label, Type: t})
		}
	}
	return out
}

// Confirm only traces the current selections. It writes nothing and does not
// clear the grid.
func (g *Grid) Confirm(logger *zap.Logger) {
	logger.Debug("Prenotazioni", zap.String("day", g.Day), zap.Any("selections", g.Cells))
}
