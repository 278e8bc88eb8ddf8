package bookingRepo

import "gymnexa/backend"

// BookingRepository is the document-store contract for booking records.
type BookingRepository = backend.BookingStore

const collectionName = "bookings"
