package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "bookings_created_total",
			Help:      "Count of bookings accepted.",
		},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "booking_conflicts_total",
			Help:      "Count of bookings rejected for an occupied slot.",
		},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "bookings_deleted_total",
			Help:      "Count of bookings removed via the admin view.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "notifications_total",
			Help:      "Count of notification attempts by outcome.",
		},
		[]string{"status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingConflict, bookingDeleted, notifications)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncNotification(status string) {
	notifications.WithLabelValues(status).Inc()
}
