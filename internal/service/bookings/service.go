package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	memberRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/member"
	slotRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/slot"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings/models"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	memberRepo   MemberRepository
	sync         SyncPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookings BookingRepository,
	slots SlotRepository,
	members MemberRepository,
	sync SyncPublisher,
	txManager TransactionManager,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		bookingRepo:  bookings,
		slotRepo:     slots,
		memberRepo:   members,
		sync:         sync,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUpcoming получает активные бронирования, время начала которых еще
// не наступило
func (s *Service) GetUpcoming(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetUpcoming: fetching upcoming bookings")

	all, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("GetUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	upcoming, _ := s.partition(all, now)

	return models.FromDomainBookings(upcoming, now), nil
}

// GetPast получает прошедшие и отмененные бронирования
func (s *Service) GetPast(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetPast: fetching past bookings")

	all, err := s.bookingRepo.List(ctx, domain.BookingsFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("GetPast: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPast - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	_, past := s.partition(all, now)

	return models.FromDomainBookings(past, now), nil
}

// GetMemberBookings получает активные бронирования участника команды
func (s *Service) GetMemberBookings(ctx context.Context, memberID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetMemberBookings: fetching bookings for member=%s", memberID)

	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("GetMemberBookings: member id=%s not found", memberID)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("GetMemberBookings: repository error for member=%s: %v", memberID, err)
		return nil, fmt.Errorf("%w: GetMemberBookings - repository error: %v", ErrInternal, err)
	}

	list, err := s.bookingRepo.List(ctx, domain.BookingsFilter{MemberID: &memberID})
	if err != nil {
		s.logger.Error("GetMemberBookings: repository error for member=%s: %v", memberID, err)
		return nil, fmt.Errorf("%w: GetMemberBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(list, s.timeProvider.Now()), nil
}

// GetDaySlots получает слоты даты, упорядоченные по времени начала
func (s *Service) GetDaySlots(ctx context.Context, date string, onlyAvailable bool) (*models.SlotListResponse, error) {
	s.logger.Info("GetDaySlots: date=%s, onlyAvailable=%v", date, onlyAvailable)

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("GetDaySlots: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, date)
	}

	slots, err := s.slotRepo.GetByDate(ctx, date, onlyAvailable)
	if err != nil {
		s.logger.Error("GetDaySlots: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDaySlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(date, slots), nil
}

// Cancel отменяет бронирование и освобождает его слот. Повторная отмена
// не является ошибкой и возвращает бронирование как есть
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var (
		result           *domain.Booking
		alreadyCancelled bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			s.logger.Info("Cancel: booking id=%s is already cancelled", id)
			result = booking
			alreadyCancelled = true
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			s.logger.Error("Cancel: failed to update status for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
		}

		// Освобождаем слот. Ошибки состояния не фатальны: слот мог быть
		// перегенерирован или уже освобожден
		if err := s.slotRepo.SetAvailability(txCtx, booking.TimeSlot.ID, false, true); err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) && !errors.Is(err, slotRepo.ErrSlotStateConflict) {
				s.logger.Error("Cancel: failed to release slot id=%s: %v", booking.TimeSlot.ID, err)
				return fmt.Errorf("%w: Cancel - failed to release slot: %v", ErrInternal, err)
			}
			s.logger.Warn("Cancel: slot id=%s not released: %v", booking.TimeSlot.ID, err)
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Удаляем событие календаря, если оно было создано
	if !alreadyCancelled && result.CalendarEventID != nil {
		s.enqueueSync(ctx, result)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(result, s.timeProvider.Now()), nil
}

// partition делит бронирования на предстоящие и прошедшие. Отмененные
// всегда прошедшие; активные делятся по времени начала слота
func (s *Service) partition(all []*domain.Booking, now time.Time) (upcoming, past []*domain.Booking) {
	upcoming = make([]*domain.Booking, 0, len(all))
	past = make([]*domain.Booking, 0)

	for _, b := range all {
		if b.IsCancelled() {
			past = append(past, b)
			continue
		}

		startsAt, err := b.StartsAt(s.loc)
		if err != nil {
			s.logger.Warn("partition: booking id=%s has malformed slot time: %v", b.ID, err)
			past = append(past, b)
			continue
		}

		if startsAt.After(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	return upcoming, past
}

func (s *Service) enqueueSync(ctx context.Context, booking *domain.Booking) {
	if s.sync == nil {
		return
	}

	task := syncqueue.Task{
		Action:     syncqueue.ActionDelete,
		BookingID:  booking.ID,
		EventID:    *booking.CalendarEventID,
		EnqueuedAt: s.timeProvider.Now(),
	}

	if err := s.sync.PublishTask(ctx, task); err != nil {
		s.logger.Error("Cancel: failed to enqueue calendar sync for booking id=%s: %v", booking.ID, err)
	}
}
