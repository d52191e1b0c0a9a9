package calendarsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/integrations/gcalendar"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/metrics"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

const (
	outcomeSuccess = "success"
	outcomeRetried = "retried"
	outcomeDropped = "dropped"
)

// Worker обрабатывает задачи синхронизации календаря из очереди.
// Неудачные задачи переставляются в очередь с увеличенным счетчиком
// попыток; после maxAttempts задача отбрасывается
type Worker struct {
	calendar    CalendarClient
	bookingRepo BookingRepository
	publisher   TaskPublisher
	metrics     *metrics.Metrics
	maxAttempts int
	logger      Logger
}

// NewWorker создает новый воркер синхронизации
func NewWorker(
	calendar CalendarClient,
	bookings BookingRepository,
	publisher TaskPublisher,
	m *metrics.Metrics,
	maxAttempts int,
	logger Logger,
) *Worker {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Worker{
		calendar:    calendar,
		bookingRepo: bookings,
		publisher:   publisher,
		metrics:     m,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Run читает задачи из канала доставки до его закрытия или отмены контекста
func (w *Worker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	w.logger.Info("Worker: started, maxAttempts=%d", w.maxAttempts)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Worker: context cancelled, stopping")
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				w.logger.Warn("Worker: delivery channel closed")
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var task syncqueue.Task
	if err := json.Unmarshal(d.Body, &task); err != nil {
		w.logger.Error("Worker: malformed task, dropping: %v", err)
		w.count("unknown", outcomeDropped)
		_ = d.Ack(false)
		return
	}

	if err := w.process(ctx, task); err != nil {
		w.retry(ctx, d, task, err)
		return
	}

	w.count(string(task.Action), outcomeSuccess)
	_ = d.Ack(false)
}

// process выполняет одну задачу синхронизации
func (w *Worker) process(ctx context.Context, task syncqueue.Task) error {
	w.logger.Info("Worker: processing task action=%s, booking_id=%s, attempt=%d",
		task.Action, task.BookingID, task.Attempt)

	switch task.Action {
	case syncqueue.ActionCreate:
		return w.createEvent(ctx, task)
	case syncqueue.ActionUpdate:
		return w.updateEvent(ctx, task)
	case syncqueue.ActionDelete:
		return w.deleteEvent(ctx, task)
	default:
		w.logger.Error("Worker: unknown task action %q, booking_id=%s", task.Action, task.BookingID)
		return nil
	}
}

func (w *Worker) createEvent(ctx context.Context, task syncqueue.Task) error {
	booking, err := w.bookingRepo.GetByID(ctx, task.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			w.logger.Warn("Worker: booking id=%s no longer exists, skipping create", task.BookingID)
			return nil
		}
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.IsCancelled() {
		w.logger.Info("Worker: booking id=%s is cancelled, skipping create", task.BookingID)
		return nil
	}

	if booking.CalendarEventID != nil {
		w.logger.Info("Worker: booking id=%s already has event id=%s", task.BookingID, *booking.CalendarEventID)
		return nil
	}

	eventID, err := w.calendar.CreateEvent(ctx, booking)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if err := w.bookingRepo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
		return fmt.Errorf("store event id: %w", err)
	}

	w.logger.Info("Worker: created event id=%s for booking id=%s", eventID, booking.ID)
	return nil
}

func (w *Worker) updateEvent(ctx context.Context, task syncqueue.Task) error {
	booking, err := w.bookingRepo.GetByID(ctx, task.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			w.logger.Warn("Worker: booking id=%s no longer exists, skipping update", task.BookingID)
			return nil
		}
		return fmt.Errorf("get booking: %w", err)
	}

	eventID := task.EventID
	if eventID == "" && booking.CalendarEventID != nil {
		eventID = *booking.CalendarEventID
	}

	// Событие еще не создавалось, переносить нечего
	if eventID == "" {
		return w.createEvent(ctx, task)
	}

	if err := w.calendar.UpdateEvent(ctx, eventID, booking); err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			w.logger.Warn("Worker: event id=%s is gone, recreating for booking id=%s", eventID, booking.ID)
			return w.createEventAgain(ctx, booking.ID)
		}
		return fmt.Errorf("update event: %w", err)
	}

	w.logger.Info("Worker: updated event id=%s for booking id=%s", eventID, booking.ID)
	return nil
}

// createEventAgain пересоздает событие для бронирования, у которого
// прежнее событие пропало на стороне календаря
func (w *Worker) createEventAgain(ctx context.Context, bookingID string) error {
	booking, err := w.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	eventID, err := w.calendar.CreateEvent(ctx, booking)
	if err != nil {
		return fmt.Errorf("recreate event: %w", err)
	}

	if err := w.bookingRepo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
		return fmt.Errorf("store event id: %w", err)
	}

	return nil
}

func (w *Worker) deleteEvent(ctx context.Context, task syncqueue.Task) error {
	if task.EventID == "" {
		w.logger.Info("Worker: delete task for booking id=%s has no event id, nothing to do", task.BookingID)
		return nil
	}

	if err := w.calendar.DeleteEvent(ctx, task.EventID); err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			w.logger.Info("Worker: event id=%s already deleted", task.EventID)
			return nil
		}
		return fmt.Errorf("delete event: %w", err)
	}

	w.logger.Info("Worker: deleted event id=%s for booking id=%s", task.EventID, task.BookingID)
	return nil
}

// retry переставляет неудачную задачу в очередь или отбрасывает ее после
// исчерпания попыток
func (w *Worker) retry(ctx context.Context, d amqp.Delivery, task syncqueue.Task, cause error) {
	if task.Attempt+1 >= w.maxAttempts {
		w.logger.Error("Worker: task action=%s, booking_id=%s dropped after %d attempts: %v",
			task.Action, task.BookingID, task.Attempt+1, cause)
		w.count(string(task.Action), outcomeDropped)
		_ = d.Ack(false)
		return
	}

	task.Attempt++
	if err := w.publisher.PublishTask(ctx, task); err != nil {
		// Не смогли переставить задачу, возвращаем доставку брокеру
		w.logger.Error("Worker: failed to requeue task action=%s, booking_id=%s: %v",
			task.Action, task.BookingID, err)
		_ = d.Nack(false, true)
		return
	}

	w.logger.Warn("Worker: task action=%s, booking_id=%s requeued, attempt=%d: %v",
		task.Action, task.BookingID, task.Attempt, cause)
	w.count(string(task.Action), outcomeRetried)
	_ = d.Ack(false)
}

func (w *Worker) count(action, outcome string) {
	if w.metrics == nil {
		return
	}
	w.metrics.SyncTasksTotal.WithLabelValues(action, outcome).Inc()
}
