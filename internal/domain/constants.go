package domain

// Default slot grid values
const (
	DefaultStartHour       = 9  // 09:00
	DefaultEndHour         = 17 // 17:00
	DefaultIntervalMinutes = 30
)

// Business validation constants
const (
	MaxBrandNameLength   = 200
	MaxDescriptionLength = 1000
	MaxGuestEmails       = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists statuses of bookings that hold a slot.
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusRescheduled,
}
