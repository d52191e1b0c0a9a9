package calendarsync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/integrations/gcalendar"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

type fakeCalendar struct {
	created   []string
	updated   []string
	deleted   []string
	createErr error
	updateErr error
	deleteErr error
	nextID    string
}

func (f *fakeCalendar) CreateEvent(_ context.Context, b *domain.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, b.ID)
	return f.nextID, nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, eventID string, _ *domain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, eventID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	eventIDs map[string]string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) SetCalendarEventID(_ context.Context, id string, eventID string) error {
	if f.eventIDs == nil {
		f.eventIDs = make(map[string]string)
	}
	f.eventIDs[id] = eventID
	return nil
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

type fakeAcknowledger struct {
	acked  bool
	nacked bool
}

func (f *fakeAcknowledger) Ack(_ uint64, _ bool) error { f.acked = true; return nil }
func (f *fakeAcknowledger) Nack(_ uint64, _ bool, _ bool) error {
	f.nacked = true
	return nil
}
func (f *fakeAcknowledger) Reject(_ uint64, _ bool) error { f.nacked = true; return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func delivery(t *testing.T, task syncqueue.Task) (amqp.Delivery, *fakeAcknowledger) {
	t.Helper()
	body, err := json.Marshal(task)
	require.NoError(t, err)
	ack := &fakeAcknowledger{}
	return amqp.Delivery{Acknowledger: ack, Body: body}, ack
}

func activeBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		BrandName: "TechGrowth",
		Status:    domain.StatusScheduled,
	}
}

func TestHandleDelivery_CreateStoresEventID(t *testing.T) {
	cal := &fakeCalendar{nextID: "evt_1"}
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": activeBooking("booking_1"),
	}}
	w := NewWorker(cal, repo, &fakePublisher{}, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{Action: syncqueue.ActionCreate, BookingID: "booking_1"})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
	assert.Equal(t, []string{"booking_1"}, cal.created)
	assert.Equal(t, "evt_1", repo.eventIDs["booking_1"])
}

func TestHandleDelivery_CreateSkipsCancelledBooking(t *testing.T) {
	cal := &fakeCalendar{nextID: "evt_1"}
	booking := activeBooking("booking_1")
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{"booking_1": booking}}
	w := NewWorker(cal, repo, &fakePublisher{}, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{Action: syncqueue.ActionCreate, BookingID: "booking_1"})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
	assert.Empty(t, cal.created)
}

func TestHandleDelivery_RetryIncrementsAttempt(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("api down")}
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": activeBooking("booking_1"),
	}}
	pub := &fakePublisher{}
	w := NewWorker(cal, repo, pub, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{Action: syncqueue.ActionCreate, BookingID: "booking_1"})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked, "the original delivery is acked after requeue")
	require.Len(t, pub.tasks, 1)
	assert.Equal(t, 1, pub.tasks[0].Attempt)
}

func TestHandleDelivery_DropsAfterMaxAttempts(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("api down")}
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": activeBooking("booking_1"),
	}}
	pub := &fakePublisher{}
	w := NewWorker(cal, repo, pub, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{
		Action:    syncqueue.ActionCreate,
		BookingID: "booking_1",
		Attempt:   2,
	})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
	assert.Empty(t, pub.tasks, "a dropped task is not republished")
}

func TestHandleDelivery_NackWhenRequeueFails(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("api down")}
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": activeBooking("booking_1"),
	}}
	pub := &fakePublisher{err: errors.New("broker down")}
	w := NewWorker(cal, repo, pub, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{Action: syncqueue.ActionCreate, BookingID: "booking_1"})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.nacked)
	assert.False(t, ack.acked)
}

func TestHandleDelivery_UpdateRecreatesGoneEvent(t *testing.T) {
	cal := &fakeCalendar{updateErr: gcalendar.ErrEventNotFound, nextID: "evt_2"}
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking_1": activeBooking("booking_1"),
	}}
	w := NewWorker(cal, repo, &fakePublisher{}, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{
		Action:    syncqueue.ActionUpdate,
		BookingID: "booking_1",
		EventID:   "evt_gone",
	})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
	assert.Equal(t, []string{"booking_1"}, cal.created)
	assert.Equal(t, "evt_2", repo.eventIDs["booking_1"])
}

func TestHandleDelivery_DeleteMissingEventIsSuccess(t *testing.T) {
	cal := &fakeCalendar{deleteErr: gcalendar.ErrEventNotFound}
	w := NewWorker(cal, &fakeBookingRepo{}, &fakePublisher{}, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{
		Action:    syncqueue.ActionDelete,
		BookingID: "booking_1",
		EventID:   "evt_1",
	})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
}

func TestHandleDelivery_Delete(t *testing.T) {
	cal := &fakeCalendar{}
	w := NewWorker(cal, &fakeBookingRepo{}, &fakePublisher{}, nil, 3, nopLogger{})

	d, ack := delivery(t, syncqueue.Task{
		Action:    syncqueue.ActionDelete,
		BookingID: "booking_1",
		EventID:   "evt_1",
	})
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
	assert.Equal(t, []string{"evt_1"}, cal.deleted)
}

func TestHandleDelivery_MalformedTaskIsDropped(t *testing.T) {
	w := NewWorker(&fakeCalendar{}, &fakeBookingRepo{}, &fakePublisher{}, nil, 3, nopLogger{})

	ack := &fakeAcknowledger{}
	d := amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")}
	w.handleDelivery(context.Background(), d)

	assert.True(t, ack.acked)
}
