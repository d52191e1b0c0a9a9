package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestEffectiveStatus(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	booking := func(status BookingStatus, date string, start, end string) *Booking {
		return &Booking{
			Status: status,
			TimeSlot: TimeSlot{
				Date:      date,
				StartTime: mustTime(t, start),
				EndTime:   mustTime(t, end),
			},
		}
	}

	tests := []struct {
		name string
		b    *Booking
		want BookingStatus
	}{
		{
			name: "scheduled in the future stays scheduled",
			b:    booking(StatusScheduled, "2026-03-10", "14:00", "14:30"),
			want: StatusScheduled,
		},
		{
			name: "scheduled in the past reads as completed",
			b:    booking(StatusScheduled, "2026-03-10", "09:00", "09:30"),
			want: StatusCompleted,
		},
		{
			name: "rescheduled in the past reads as completed",
			b:    booking(StatusRescheduled, "2026-03-09", "16:00", "16:30"),
			want: StatusCompleted,
		},
		{
			name: "cancelled stays cancelled even when elapsed",
			b:    booking(StatusCancelled, "2026-03-09", "16:00", "16:30"),
			want: StatusCancelled,
		},
		{
			name: "slot ending exactly now is completed",
			b:    booking(StatusScheduled, "2026-03-10", "11:30", "12:00"),
			want: StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.EffectiveStatus(now))
		})
	}
}

func TestSlotID(t *testing.T) {
	assert.Equal(t, "slot_2026-03-10_0930", SlotID("2026-03-10", mustTime(t, "09:30")))
	// Identical (date, start) pairs collide regardless of owner.
	assert.Equal(t,
		SlotID("2026-03-10", mustTime(t, "14:00")),
		SlotID("2026-03-10", mustTime(t, "14:00")))
}

func TestSlotStartsEndsAt(t *testing.T) {
	slot := &TimeSlot{
		Date:      "2026-03-10",
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "09:30"),
	}

	start, err := slot.StartsAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), start)

	end, err := slot.EndsAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), end)
}
