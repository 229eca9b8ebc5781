package store

import (
	"errors"

	"barberbook-backend/models"
)

// StorageKey is the single namespaced entry holding the whole booking
// collection. Kept from the original deployment so an existing value can
// be imported as-is.
const StorageKey = "ajjubhai_bookings"

// ErrWrite marks a failed persist. Reads never fail this way: an absent or
// malformed value loads as an empty collection.
var ErrWrite = errors.New("storage write failed")

// Store persists the booking collection as one unit. Save overwrites the
// previous value (last writer wins); callers serialize their own
// check-then-save sequences.
type Store interface {
	Load() ([]models.Booking, error)
	Save(bookings []models.Booking) error
}
