package propagate_template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/timegrid"
)

type fakeMemberRepo struct {
	members []domain.TeamMember
}

func (f *fakeMemberRepo) List(_ context.Context) ([]domain.TeamMember, error) {
	return f.members, nil
}

type fakeSlotRepo struct {
	byDate map[string][]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByDate(_ context.Context, date string, onlyAvailable bool) ([]*domain.TimeSlot, error) {
	slots := f.byDate[date]
	if !onlyAvailable {
		return slots, nil
	}
	out := make([]*domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ReplaceForDate(_ context.Context, date string, slots []*domain.TimeSlot) error {
	if f.byDate == nil {
		f.byDate = make(map[string][]*domain.TimeSlot)
	}
	f.byDate[date] = slots
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func team(n int) []domain.TeamMember {
	out := make([]domain.TeamMember, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.TeamMember{ID: "member_" + string(rune('0'+i))})
	}
	return out
}

// sourceDay строит день-источник: сетка по умолчанию, слоты с индексами
// из booked заняты
func sourceDay(date string, members []domain.TeamMember, booked ...int) []*domain.TimeSlot {
	template, err := timegrid.GenerateTemplate(timegrid.DefaultConfig())
	if err != nil {
		panic(err)
	}
	slots := timegrid.Allocate(date, template, members)
	for _, i := range booked {
		slots[i].Available = false
	}
	out := make([]*domain.TimeSlot, 0, len(slots))
	for i := range slots {
		out = append(out, &slots[i])
	}
	return out
}

func TestExecute_CopiesAvailabilityPositionally(t *testing.T) {
	members := team(4)
	slotRepo := &fakeSlotRepo{byDate: map[string][]*domain.TimeSlot{
		"2026-03-10": sourceDay("2026-03-10", members, 0, 5, 15),
	}}
	uc := NewUseCase(&fakeMemberRepo{members: members}, slotRepo, fakeTxManager{},
		timegrid.DefaultConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SourceDate:  "2026-03-10",
		TargetDates: []string{"2026-03-11", "2026-03-12"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-03-11", "2026-03-12"}, resp.AppliedDates)
	assert.Equal(t, 16, resp.SlotsPerTarget)

	for _, date := range resp.AppliedDates {
		slots := slotRepo.byDate[date]
		require.Len(t, slots, 16, date)

		for i, s := range slots {
			wantAvailable := i != 0 && i != 5 && i != 15
			assert.Equal(t, wantAvailable, s.Available, "date %s index %d", date, i)
			assert.Equal(t, date, s.Date)
		}

		// идентификаторы принадлежат целевой дате
		assert.Equal(t, "slot_"+date+"_0900", slots[0].ID)
	}
}

func TestExecute_SkipsSourceDate(t *testing.T) {
	members := team(2)
	slotRepo := &fakeSlotRepo{byDate: map[string][]*domain.TimeSlot{
		"2026-03-10": sourceDay("2026-03-10", members, 3),
	}}
	uc := NewUseCase(&fakeMemberRepo{members: members}, slotRepo, fakeTxManager{},
		timegrid.DefaultConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SourceDate:  "2026-03-10",
		TargetDates: []string{"2026-03-10", "2026-03-11"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-03-11"}, resp.AppliedDates)
	assert.Equal(t, []string{"2026-03-10"}, resp.SkippedDates)

	// источник не перезаписан: занятый слот остался занятым
	assert.False(t, slotRepo.byDate["2026-03-10"][3].Available)
}

func TestExecute_AllTargetsMatchSource(t *testing.T) {
	uc := NewUseCase(&fakeMemberRepo{members: team(2)}, &fakeSlotRepo{}, fakeTxManager{},
		timegrid.DefaultConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SourceDate:  "2026-03-10",
		TargetDates: []string{"2026-03-10"},
	})
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestExecute_EmptySourceLeavesTargetsOpen(t *testing.T) {
	members := team(3)
	slotRepo := &fakeSlotRepo{}
	uc := NewUseCase(&fakeMemberRepo{members: members}, slotRepo, fakeTxManager{},
		timegrid.DefaultConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SourceDate:  "2026-03-10",
		TargetDates: []string{"2026-03-11"},
	})
	require.NoError(t, err)

	for _, s := range slotRepo.byDate["2026-03-11"] {
		assert.True(t, s.Available)
	}
}

func TestExecute_InvalidDates(t *testing.T) {
	uc := NewUseCase(&fakeMemberRepo{members: team(1)}, &fakeSlotRepo{}, fakeTxManager{},
		timegrid.DefaultConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SourceDate:  "bad",
		TargetDates: []string{"2026-03-11"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		SourceDate:  "2026-03-10",
		TargetDates: []string{"2026-03-11", "bad"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
