package models

import (
	"sort"
	"time"
)

// BookingType is the category of a slot reservation. The zero value means unset.
type BookingType string

const (
	BookingUnset    BookingType = ""
	BookingGymFloor BookingType = "sala_pesi"
	BookingOpen     BookingType = "open"
)

// BookingDateFormat is the calendar-date layout used for Booking.Date.
const BookingDateFormat = "2006-01-02"

// Valid reports whether t is one of the two selectable categories.
func (t BookingType) Valid() bool {
	return t == BookingGymFloor || t == BookingOpen
}

// Label returns the Italian display name.
func (t BookingType) Label() string {
	switch t {
	case BookingGymFloor:
		return "Sala Pesi"
	case BookingOpen:
		return "Open"
	default:
		return ""
	}
}

// Booking is a persisted reservation record.
type Booking struct {
	ID        string      `bson:"id" json:"id" firestore:"-"`
	UserID    string      `bson:"userId" json:"userId" firestore:"userId"`
	Date      string      `bson:"date" json:"date" firestore:"date"`
	TimeSlot  string      `bson:"timeSlot" json:"timeSlot" firestore:"timeSlot"`
	Type      BookingType `bson:"type" json:"type" firestore:"type"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// SortBookings orders bookings by date, then by catalog slot position.
func SortBookings(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return slotIndex(bookings[i].TimeSlot) < slotIndex(bookings[j].TimeSlot)
	})
}
