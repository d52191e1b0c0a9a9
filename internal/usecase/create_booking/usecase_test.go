package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
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
	created []*domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, b)
	return b, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	tasks []syncqueue.Task
	err   error
}

func (f *fakePublisher) PublishTask(_ context.Context, task syncqueue.Task) error {
	if f.err != nil {
		return f.err
	}
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

func newSlot(t *testing.T, available bool) *domain.TimeSlot {
	t.Helper()
	return &domain.TimeSlot{
		ID:        "slot_2026-03-10_0900",
		Date:      "2026-03-10",
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "09:30"),
		Available: available,
		MemberID:  "member_1",
	}
}

func newUseCase(slots *fakeSlotRepo, bookings *fakeBookingRepo, pub *fakePublisher) *UseCase {
	var sync SyncPublisher
	if pub != nil {
		sync = pub
	}
	return NewUseCase(bookings, slots, sync, fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		TimeSlotID:  "slot_2026-03-10_0900",
		BrandName:   "TechGrowth",
		TicketID:    "TICK-10234",
		GuestEmails: "a@x.com, b@y.com",
	}
}

func TestExecute_Success(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot_2026-03-10_0900": newSlot(t, true),
	}}
	bookings := &fakeBookingRepo{}
	pub := &fakePublisher{}
	uc := newUseCase(slots, bookings, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "member_1", resp.MemberID)
	assert.Equal(t, "10234", resp.TicketID, "ticket id keeps digits only")
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, resp.GuestEmails)

	// slot is claimed
	assert.False(t, slots.slots["slot_2026-03-10_0900"].Available)

	// sync task enqueued for this booking
	require.Len(t, pub.tasks, 1)
	assert.Equal(t, syncqueue.ActionCreate, pub.tasks[0].Action)
	assert.Equal(t, resp.ID, pub.tasks[0].BookingID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{}}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(slots, bookings, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, bookings.created)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot_2026-03-10_0900": newSlot(t, false),
	}}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(slots, bookings, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// nothing changed
	assert.Empty(t, bookings.created)
	assert.False(t, slots.slots["slot_2026-03-10_0900"].Available)
}

func TestExecute_InvalidGuestEmails(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot_2026-03-10_0900": newSlot(t, true),
	}}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(slots, bookings, nil)

	req := validRequest()
	req.GuestEmails = "a@x.com, bad, b@y.com"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidGuestEmails)
	assert.Contains(t, err.Error(), "bad", "error names the offending address")

	// all-or-nothing: no booking, slot untouched
	assert.Empty(t, bookings.created)
	assert.True(t, slots.slots["slot_2026-03-10_0900"].Available)
}

func TestExecute_MissingBrandName(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{slots: map[string]*domain.TimeSlot{}}, &fakeBookingRepo{}, nil)

	req := validRequest()
	req.BrandName = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SyncFailureDoesNotFailBooking(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot_2026-03-10_0900": newSlot(t, true),
	}}
	bookings := &fakeBookingRepo{}
	pub := &fakePublisher{err: errors.New("broker down")}
	uc := newUseCase(slots, bookings, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, slots.slots["slot_2026-03-10_0900"].Available)
}

func TestExecute_NoPublisherConfigured(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot_2026-03-10_0900": newSlot(t, true),
	}}
	uc := newUseCase(slots, &fakeBookingRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}
