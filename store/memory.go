package store

import (
	"sync"

	"barberbook-backend/models"
)

// MemoryStore is an in-process Store used by tests and by demo mode.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: []models.Booking{}}
}

func (s *MemoryStore) Load() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) Save(bookings []models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make([]models.Booking, len(bookings))
	copy(s.bookings, bookings)
	return nil
}
