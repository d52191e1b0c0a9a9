package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/types"
)

// TimeSlot represents a fixed-duration bookable window on one calendar day,
// owned by exactly one team member. Slots are created in bulk per date and
// afterwards only have their availability toggled, never deleted one by one.
type TimeSlot struct {
	ID        string
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	MemberID  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotID derives the canonical slot identifier from date and start time.
// The member deliberately does not participate: callers must treat the
// (date, start) pair as the unique slot key and a date's allocation as a
// full replacement.
func SlotID(date string, start types.TimeString) string {
	return fmt.Sprintf("slot_%s_%s", date, strings.ReplaceAll(start.String(), ":", ""))
}

// StartsAt combines the slot's date and start time into a time.Time in the
// given location.
func (s *TimeSlot) StartsAt(loc *time.Location) (time.Time, error) {
	return combineDateTime(s.Date, s.StartTime, loc)
}

// EndsAt combines the slot's date and end time into a time.Time in the
// given location.
func (s *TimeSlot) EndsAt(loc *time.Location) (time.Time, error) {
	return combineDateTime(s.Date, s.EndTime, loc)
}

func combineDateTime(date string, t types.TimeString, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateFormat+" "+TimeFormat, date+" "+t.String(), loc)
}
