package services

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"barberbook-backend/models"
)

// Notifier delivers a booking confirmation to the shop operator. It is the
// seam where a real transport replaces the log stub; failures must never
// bubble up into the booking flow.
type Notifier interface {
	Notify(booking models.Booking) error
}

// TextSender sends an arbitrary operator-facing message over the same
// channel. Both notifier implementations satisfy it; the reminder sweep
// uses it directly.
type TextSender interface {
	SendText(body string) error
}

// FormatBookingMessage renders the confirmation template. The exact text
// is relied on by the shop staff's message filters, so keep it stable.
func FormatBookingMessage(b models.Booking) string {
	return fmt.Sprintf("New Appointment Booked:\nName: %s\nPhone: %s\nService: %s\nDate: %s\nTime: %s",
		b.Name, b.Phone, b.Service, b.Date, b.Time)
}

// LogNotifier writes notifications to the log. Default when Twilio
// credentials are absent.
type LogNotifier struct {
	log zerolog.Logger
	to  string
}

func NewLogNotifier(log zerolog.Logger, to string) *LogNotifier {
	return &LogNotifier{log: log, to: to}
}

func (n *LogNotifier) Notify(b models.Booking) error {
	return n.SendText(FormatBookingMessage(b))
}

func (n *LogNotifier) SendText(body string) error {
	n.log.Info().Str("to", n.to).Str("channel", "log").Msg(body)
	return nil
}

// TwilioNotifier sends the notification as an SMS to the shop's number.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
	log    zerolog.Logger
}

func NewTwilioNotifier(log zerolog.Logger) *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
		to:   os.Getenv("NOTIFY_PHONE"),
		log:  log,
	}
}

func (n *TwilioNotifier) Notify(b models.Booking) error {
	return n.SendText(FormatBookingMessage(b))
}

func (n *TwilioNotifier) SendText(body string) error {
	if n.to == "" {
		return errors.New("NOTIFY_PHONE not set")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", n.to, err)
	}
	if resp.Sid != nil {
		n.log.Info().Str("to", n.to).Str("sid", *resp.Sid).Msg("sms sent")
	} else {
		n.log.Info().Str("to", n.to).Msg("sms sent, no SID returned")
	}
	return nil
}

// NotifierFromEnv picks the Twilio transport when credentials are
// configured and falls back to the log stub otherwise.
func NotifierFromEnv(log zerolog.Logger) Notifier {
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != "" {
		return NewTwilioNotifier(log)
	}
	return NewLogNotifier(log, os.Getenv("NOTIFY_PHONE"))
}
