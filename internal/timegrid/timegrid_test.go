package timegrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

func members(n int) []domain.TeamMember {
	out := make([]domain.TeamMember, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.TeamMember{
			ID:   fmt.Sprintf("member_%d", i),
			Name: fmt.Sprintf("Member %d", i),
		})
	}
	return out
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("default config yields 16 contiguous windows", func(t *testing.T) {
		windows, err := GenerateTemplate(DefaultConfig())
		require.NoError(t, err)
		require.Len(t, windows, 16)

		assert.Equal(t, "09:00", windows[0].Start.String())
		assert.Equal(t, "09:30", windows[0].End.String())
		assert.Equal(t, "16:30", windows[15].Start.String())
		assert.Equal(t, "17:00", windows[15].End.String())

		// contiguous, non-overlapping, time-ordered
		for i := 1; i < len(windows); i++ {
			assert.Equal(t, windows[i-1].End, windows[i].Start)
			assert.True(t, windows[i].Start.IsBefore(windows[i].End))
		}
	})

	t.Run("hour-long intervals", func(t *testing.T) {
		windows, err := GenerateTemplate(Config{StartHour: 10, EndHour: 14, IntervalMinutes: 60})
		require.NoError(t, err)
		require.Len(t, windows, 4)
		assert.Equal(t, "10:00", windows[0].Start.String())
		assert.Equal(t, "14:00", windows[3].End.String())
	})

	t.Run("invalid configs", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  Config
		}{
			{"end before start", Config{StartHour: 17, EndHour: 9, IntervalMinutes: 30}},
			{"end equals start", Config{StartHour: 9, EndHour: 9, IntervalMinutes: 30}},
			{"zero interval", Config{StartHour: 9, EndHour: 17, IntervalMinutes: 0}},
			{"negative interval", Config{StartHour: 9, EndHour: 17, IntervalMinutes: -30}},
			{"interval does not divide window", Config{StartHour: 9, EndHour: 17, IntervalMinutes: 45}},
			{"start hour out of range", Config{StartHour: -1, EndHour: 17, IntervalMinutes: 30}},
			{"end hour out of range", Config{StartHour: 9, EndHour: 25, IntervalMinutes: 30}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := GenerateTemplate(tt.cfg)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			})
		}
	})
}

func TestAllocate(t *testing.T) {
	const date = "2026-03-10"

	template, err := GenerateTemplate(DefaultConfig())
	require.NoError(t, err)

	t.Run("empty members yields empty result without error", func(t *testing.T) {
		slots := Allocate(date, template, nil)
		assert.Empty(t, slots)
	})

	t.Run("16 slots over 4 members form contiguous blocks of 4", func(t *testing.T) {
		team := members(4)
		slots := Allocate(date, template, team)
		require.Len(t, slots, 16)

		for i, slot := range slots {
			expected := team[i/4].ID
			assert.Equal(t, expected, slot.MemberID, "slot index %d", i)
			assert.True(t, slot.Available)
			assert.Equal(t, date, slot.Date)
		}

		// slot index 5 belongs to member 2, index 9 to member 3
		assert.Equal(t, "member_2", slots[5].MemberID)
		assert.Equal(t, "member_3", slots[9].MemberID)
	})

	t.Run("uneven split gives ceil-sized blocks", func(t *testing.T) {
		team := members(3)
		slots := Allocate(date, template, team)
		require.Len(t, slots, 16)

		// blockSize = ceil(16/3) = 6: indices 0-5, 6-11, 12-15
		assert.Equal(t, "member_1", slots[0].MemberID)
		assert.Equal(t, "member_1", slots[5].MemberID)
		assert.Equal(t, "member_2", slots[6].MemberID)
		assert.Equal(t, "member_2", slots[11].MemberID)
		assert.Equal(t, "member_3", slots[12].MemberID)
		assert.Equal(t, "member_3", slots[15].MemberID)
	})

	t.Run("every member with slots owns a contiguous run", func(t *testing.T) {
		for _, teamSize := range []int{1, 2, 4, 5, 7, 16} {
			team := members(teamSize)
			slots := Allocate(date, template, team)
			require.Len(t, slots, 16)

			seen := map[string]bool{}
			last := ""
			for _, slot := range slots {
				if slot.MemberID != last {
					assert.False(t, seen[slot.MemberID],
						"team size %d: member %s owns non-contiguous slots", teamSize, slot.MemberID)
					seen[slot.MemberID] = true
					last = slot.MemberID
				}
			}
		}
	})

	t.Run("ids derive from date and start only", func(t *testing.T) {
		first := Allocate(date, template, members(4))
		second := Allocate(date, template, members(2))
		require.Len(t, second, len(first))

		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
		assert.Equal(t, "slot_2026-03-10_0900", first[0].ID)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		team := members(4)
		assert.Equal(t, Allocate(date, template, team), Allocate(date, template, team))
	})
}
