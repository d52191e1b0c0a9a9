package bookings

import (
	"context"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByDate(ctx context.Context, date string, onlyAvailable bool) ([]*domain.TimeSlot, error)
	SetAvailability(ctx context.Context, id string, expected, desired bool) error
}

// MemberRepository интерфейс репозитория участников команды
type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
}

// SyncPublisher интерфейс публикации задач синхронизации календаря
type SyncPublisher interface {
	PublishTask(ctx context.Context, task syncqueue.Task) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
