package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	slotRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/slot"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

// UseCase use case для создания бронирования
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
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	sync SyncPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		sync:         sync,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Захват слота - compare-and-set внутри сериализуемой транзакции, поэтому
// двойное бронирование при конкурентных запросах невозможно: проигравший
// получает ErrSlotConflict, состояние не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, brand=%s", req.TimeSlotID, req.BrandName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем гостевые адреса - всё или ничего
	guests, err := parseGuestEmails(req.GuestEmails)
	if err != nil {
		uc.logger.Warn("CreateBooking: guest email validation failed: %v", err)
		return nil, err
	}

	// 3. Нормализуем номер тикета
	ticketID := normalizeTicketID(req.TicketID)

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 4. Захватываем слот и создаем бронирование в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем слот
		timeSlot, err := uc.slotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%s not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность
		if !timeSlot.Available {
			uc.logger.Warn("CreateBooking: slot id=%s is not available", req.TimeSlotID)
			return ErrSlotNotAvailable
		}

		// 4.3. Помечаем слот занятым (compare-and-set)
		if err := uc.slotRepo.SetAvailability(txCtx, timeSlot.ID, true, false); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotStateConflict):
				uc.logger.Warn("CreateBooking: slot id=%s was taken concurrently", timeSlot.ID)
				return ErrSlotConflict
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			default:
				uc.logger.Error("CreateBooking: failed to claim slot id=%s: %v", timeSlot.ID, err)
				return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
			}
		}

		// 4.4. Создаем бронирование со снимком слота
		snapshot := *timeSlot
		snapshot.Available = false

		booking := &domain.Booking{
			ID:          fmt.Sprintf("booking_%d", now.UnixNano()),
			BrandName:   req.BrandName,
			TicketID:    ticketID,
			Description: req.Description,
			GuestEmails: guests,
			TimeSlot:    snapshot,
			MemberID:    timeSlot.MemberID,
			Status:      domain.StatusScheduled,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, member=%s, slot=%s",
		result.ID, result.MemberID, result.TimeSlot.ID)

	// 5. Ставим задачу синхронизации календаря - строго best-effort:
	// ошибка публикации логируется и никогда не отменяет бронирование
	uc.enqueueSync(ctx, result)

	return fromDomain(result), nil
}

func (uc *UseCase) enqueueSync(ctx context.Context, booking *domain.Booking) {
	if uc.sync == nil {
		return
	}

	task := syncqueue.Task{
		Action:     syncqueue.ActionCreate,
		BookingID:  booking.ID,
		EnqueuedAt: uc.timeProvider.Now(),
	}
	if err := uc.sync.PublishTask(ctx, task); err != nil {
		uc.logger.Error("CreateBooking: failed to enqueue calendar sync for booking id=%s: %v",
			booking.ID, err)
	}
}
