package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString_TruncatesToMinutes(t *testing.T) {
	moment := time.Date(2026, 3, 10, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}

func TestMinutes(t *testing.T) {
	ts := TimeString("09:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 30, "09:30"},
		{"16:30", 30, "17:00"},
		{"23:45", 30, "00:15"}, // wraps midnight
		{"00:15", -30, "23:45"},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.start).AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, TimeString(tt.want), got, "%s + %d min", tt.start, tt.minutes)
	}
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("10:00")))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 10, 11, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
