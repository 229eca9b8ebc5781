// utils/dates.go
package utils

import "time"

// DateString formats t in the calendar-date form bookings carry.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func Today() string {
	return DateString(time.Now())
}

func Tomorrow() string {
	return DateString(time.Now().AddDate(0, 0, 1))
}
