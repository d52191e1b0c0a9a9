package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	slotRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/slot"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

// UseCase перенос бронирования на другой слот
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	sync         SyncPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	slots SlotRepository,
	sync SyncPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		slotRepo:     slots,
		sync:         sync,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос бронирования. Новый слот захватывается через
// compare-and-set, старый освобождается в той же транзакции. Бронирование
// переходит в статус rescheduled и закрепляется за владельцем нового слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, newSlot=%s", req.BookingID, req.NewTimeSlotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			uc.logger.Warn("RescheduleBooking: booking id=%s is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		if booking.TimeSlot.ID == req.NewTimeSlotID {
			return ErrSameSlot
		}

		// 2. Читаем новый слот
		newSlot, err := uc.slotRepo.GetByID(txCtx, req.NewTimeSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("RescheduleBooking: slot id=%s not found", req.NewTimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get slot id=%s: %v", req.NewTimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !newSlot.Available {
			uc.logger.Warn("RescheduleBooking: slot id=%s is not available", req.NewTimeSlotID)
			return ErrSlotNotAvailable
		}

		// 3. Захватываем новый слот
		if err := uc.slotRepo.SetAvailability(txCtx, newSlot.ID, true, false); err != nil {
			if errors.Is(err, slotRepo.ErrSlotStateConflict) {
				uc.logger.Warn("RescheduleBooking: slot id=%s was taken concurrently", newSlot.ID)
				return ErrSlotConflict
			}
			uc.logger.Error("RescheduleBooking: failed to claim slot id=%s: %v", newSlot.ID, err)
			return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
		}

		// 4. Освобождаем старый слот. Ошибки состояния не фатальны:
		// слот мог быть перегенерирован или удален администратором
		oldSlotID := booking.TimeSlot.ID
		if err := uc.slotRepo.SetAvailability(txCtx, oldSlotID, false, true); err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) && !errors.Is(err, slotRepo.ErrSlotStateConflict) {
				uc.logger.Error("RescheduleBooking: failed to release slot id=%s: %v", oldSlotID, err)
				return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
			}
			uc.logger.Warn("RescheduleBooking: old slot id=%s not released: %v", oldSlotID, err)
		}

		// 5. Переносим бронирование на новый слот
		snapshot := *newSlot
		snapshot.Available = false

		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, &snapshot); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.TimeSlot = snapshot
		booking.MemberID = newSlot.MemberID
		booking.Status = domain.StatusRescheduled
		result = booking

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved to slot id=%s (member=%s)",
		result.ID, result.TimeSlot.ID, result.MemberID)

	uc.enqueueSync(ctx, result)

	return fromDomain(result), nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.NewTimeSlotID) == "" {
		return fmt.Errorf("%w: newTimeSlotId is required", ErrInvalidInput)
	}
	return nil
}

// enqueueSync ставит задачу обновления события календаря. Ошибка публикации
// не влияет на результат переноса
func (uc *UseCase) enqueueSync(ctx context.Context, booking *domain.Booking) {
	if uc.sync == nil {
		return
	}

	task := syncqueue.Task{
		Action:     syncqueue.ActionUpdate,
		BookingID:  booking.ID,
		EnqueuedAt: uc.timeProvider.Now(),
	}
	if booking.CalendarEventID != nil {
		task.EventID = *booking.CalendarEventID
	}

	if err := uc.sync.PublishTask(ctx, task); err != nil {
		uc.logger.Error("RescheduleBooking: failed to enqueue calendar sync for booking id=%s: %v",
			booking.ID, err)
	}
}
