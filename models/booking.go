package models

// Booking is a single appointment record. The JSON shape doubles as the
// persisted format, so field names must stay stable.
type Booking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // one of TimeSlots
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

// TimeSlots is the fixed, ordered set of bookable slot labels. The shop
// closes 12-2 for lunch, hence the gap.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
	"06:00 PM", "07:00 PM", "08:00 PM",
}
