package domain

import "time"

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusScheduled   BookingStatus = "scheduled"
	StatusRescheduled BookingStatus = "rescheduled"
	StatusCancelled   BookingStatus = "cancelled"
	// StatusCompleted is never stored: it is derived at read time once the
	// booked slot has elapsed. See EffectiveStatus.
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a scheduled call between an external brand contact and
// a team member. The TimeSlot is an embedded snapshot taken at booking (or
// reschedule) time so history survives later re-allocation of the date.
type Booking struct {
	ID          string
	BrandName   string
	TicketID    string
	Description *string
	GuestEmails []string

	TimeSlot TimeSlot
	MemberID string // always equal to TimeSlot.MemberID
	Status   BookingStatus

	CalendarEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still holds its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// StartsAt returns the moment the booked slot begins.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return b.TimeSlot.StartsAt(loc)
}

// EffectiveStatus returns the status as presented to callers: an active
// booking whose slot end has passed reads as completed, everything else
// keeps its stored status.
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if !b.IsActive() {
		return b.Status
	}
	endsAt, err := b.TimeSlot.EndsAt(now.Location())
	if err != nil {
		return b.Status
	}
	if !endsAt.After(now) {
		return StatusCompleted
	}
	return b.Status
}

// BookingsFilter is the flexible filter for listing bookings.
type BookingsFilter struct {
	MemberID         *string // nil = all members
	IncludeCancelled bool
}
