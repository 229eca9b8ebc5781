package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"barberbook-backend/metrics"
	"barberbook-backend/models"
	"barberbook-backend/store"
)

// User-facing messages, surfaced verbatim by the booking form.
var (
	ErrSlotTaken    = errors.New("This time slot is already booked. Please choose another one.")
	ErrTimeRequired = errors.New("Please select a time slot.")
)

// BookingInput carries the user-supplied fields of a candidate booking.
// ID and CreatedAt are always assigned here, never by callers.
type BookingInput struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
}

// BookingService owns the booking collection: it is the only writer to the
// store and the only place the one-booking-per-slot rule is enforced.
type BookingService struct {
	mu       sync.Mutex
	store    store.Store
	notifier Notifier
	log      zerolog.Logger
}

func NewBookingService(st store.Store, notifier Notifier, log zerolog.Logger) *BookingService {
	return &BookingService{store: st, notifier: notifier, log: log}
}

// List returns the stored collection verbatim, in insertion order.
func (s *BookingService) List() ([]models.Booking, error) {
	bookings, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return bookings, nil
}

// BookedTimes returns the slot labels already taken on the given date.
func (s *BookingService) BookedTimes(date string) ([]string, error) {
	bookings, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	var times []string
	for _, b := range bookings {
		if b.Date == date {
			times = append(times, b.Time)
		}
	}
	return times, nil
}

// Add validates the candidate, checks the slot against the full current
// collection and persists the new record. The confirmation notification is
// best effort: its failure is logged and swallowed so a sent booking is
// never reported as failed.
func (s *BookingService) Add(input BookingInput) (models.Booking, error) {
	if input.Time == "" {
		return models.Booking{}, ErrTimeRequired
	}

	// The check-then-save window must not interleave between handlers.
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Load()
	if err != nil {
		return models.Booking{}, fmt.Errorf("load bookings: %w", err)
	}

	for _, b := range bookings {
		if b.Date == input.Date && b.Time == input.Time {
			metrics.IncBookingConflict()
			return models.Booking{}, ErrSlotTaken
		}
	}

	booking := models.Booking{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		Time:      input.Time,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.store.Save(append(bookings, booking)); err != nil {
		return models.Booking{}, err
	}
	metrics.IncBookingCreated()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("date", booking.Date).
		Str("time", booking.Time).
		Msg("booking created")

	if err := s.notifier.Notify(booking); err != nil {
		metrics.IncNotification("failed")
		s.log.Warn().Err(err).Str("booking_id", booking.ID).Msg("notification failed")
	} else {
		metrics.IncNotification("sent")
	}

	return booking, nil
}

// Delete removes the booking with the given id. A missing id is a no-op,
// not an error.
func (s *BookingService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		return nil
	}

	if err := s.store.Save(kept); err != nil {
		return err
	}
	metrics.IncBookingDeleted()
	s.log.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
