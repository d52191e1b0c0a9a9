package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	slotRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/slot"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/types"
)

type fakeSlotRepo struct {
	slots map[string]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) SetAvailability(_ context.Context, id string, expected, desired bool) error {
	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.Available != expected {
		return slotRepo.ErrSlotStateConflict
	}
	s.Available = desired
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, id string, newSlot *domain.TimeSlot) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.TimeSlot = *newSlot
	b.MemberID = newSlot.MemberID
	b.Status = domain.StatusRescheduled
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	tasks []syncqueue.Task
}

func (f *fakePublisher) PublishTask(_ context.Context, task syncqueue.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func slot(t *testing.T, start string, available bool, memberID string) *domain.TimeSlot {
	t.Helper()
	st := mustTime(t, start)
	end, err := st.AddMinutes(domain.DefaultIntervalMinutes)
	require.NoError(t, err)
	return &domain.TimeSlot{
		ID:        domain.SlotID("2026-03-10", st),
		Date:      "2026-03-10",
		StartTime: st,
		EndTime:   end,
		Available: available,
		MemberID:  memberID,
	}
}

type fixture struct {
	uc       *UseCase
	slots    *fakeSlotRepo
	bookings *fakeBookingRepo
	pub      *fakePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	oldSlot := slot(t, "09:00", false, "member_1")
	newSlot := slot(t, "10:00", true, "member_2")

	booked := *oldSlot
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		oldSlot.ID: oldSlot,
		newSlot.ID: newSlot,
	}}
	bookings := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": {
			ID:        "booking_1",
			BrandName: "TechGrowth",
			TimeSlot:  booked,
			MemberID:  "member_1",
			Status:    domain.StatusScheduled,
			CreatedAt: time.Now(),
		},
	}}
	pub := &fakePublisher{}

	return &fixture{
		uc:       NewUseCase(bookings, slots, pub, fakeTxManager{}, nopLogger{}),
		slots:    slots,
		bookings: bookings,
		pub:      pub,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRescheduled), resp.Status)
	assert.Equal(t, "slot_2026-03-10_1000", resp.TimeSlotID)
	assert.Equal(t, "member_2", resp.MemberID, "booking moves to the new slot owner")
	assert.Equal(t, "10:00", resp.StartTime)

	// new slot claimed, old slot released
	assert.False(t, f.slots.slots["slot_2026-03-10_1000"].Available)
	assert.True(t, f.slots.slots["slot_2026-03-10_0900"].Available)

	// booking state persisted
	assert.Equal(t, domain.StatusRescheduled, f.bookings.bookings["booking_1"].Status)

	require.Len(t, f.pub.tasks, 1)
	assert.Equal(t, syncqueue.ActionUpdate, f.pub.tasks[0].Action)
	assert.Equal(t, "booking_1", f.pub.tasks[0].BookingID)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_missing",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBooking(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings["booking_1"].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	// target slot untouched
	assert.True(t, f.slots.slots["slot_2026-03-10_1000"].Available)
}

func TestExecute_NewSlotNotAvailable(t *testing.T) {
	f := newFixture(t)
	f.slots.slots["slot_2026-03-10_1000"].Available = false

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// old slot still booked
	assert.False(t, f.slots.slots["slot_2026-03-10_0900"].Available)
	assert.Equal(t, domain.StatusScheduled, f.bookings.bookings["booking_1"].Status)
}

func TestExecute_NewSlotNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_2300",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SameSlot(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_0900",
	})
	assert.ErrorIs(t, err, ErrSameSlot)
}

func TestExecute_OldSlotAlreadyReleased(t *testing.T) {
	f := newFixture(t)
	// слот уже свободен: перенос не должен падать из-за этого
	f.slots.slots["slot_2026-03-10_0900"].Available = true

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	require.NoError(t, err)
	assert.Equal(t, "slot_2026-03-10_1000", resp.TimeSlotID)
}

func TestExecute_CarriesEventIDInSyncTask(t *testing.T) {
	f := newFixture(t)
	eventID := "evt_42"
	f.bookings.bookings["booking_1"].CalendarEventID = &eventID

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     "booking_1",
		NewTimeSlotID: "slot_2026-03-10_1000",
	})
	require.NoError(t, err)

	require.Len(t, f.pub.tasks, 1)
	assert.Equal(t, "evt_42", f.pub.tasks[0].EventID)
}

func TestExecute_MissingIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{NewTimeSlotID: "slot_2026-03-10_1000"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BookingID: "booking_1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
