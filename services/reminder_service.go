package services

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ReminderService sends day-before reminders for upcoming appointments
// over the same channel as booking confirmations.
type ReminderService struct {
	bookings *BookingService
	sender   TextSender
	log      zerolog.Logger
}

func NewReminderService(bookings *BookingService, sender TextSender, log zerolog.Logger) *ReminderService {
	return &ReminderService{bookings: bookings, sender: sender, log: log}
}

// StartScheduler runs the daily sweep at 9 AM shop time.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	s.log.Info().Msg("reminder scheduler started")
	return c
}

// SendDailyReminders notifies the operator about every booking scheduled
// for tomorrow. One failed send does not abort the sweep.
func (s *ReminderService) SendDailyReminders() {
	tomorrow := utils.Tomorrow()

	bookings, err := s.bookings.List()
	if err != nil {
		s.log.Error().Err(err).Msg("reminder sweep: failed to load bookings")
		return
	}

	sent := 0
	for _, b := range bookings {
		if b.Date != tomorrow {
			continue
		}
		if err := s.sender.SendText(formatReminderMessage(b)); err != nil {
			s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("reminder send failed")
			continue
		}
		sent++
	}
	s.log.Info().Int("sent", sent).Str("date", tomorrow).Msg("reminder sweep completed")
}

func formatReminderMessage(b models.Booking) string {
	return fmt.Sprintf("Appointment Reminder (tomorrow):\nName: %s\nPhone: %s\nService: %s\nDate: %s\nTime: %s",
		b.Name, b.Phone, b.Service, b.Date, b.Time)
}
