package calendarsync

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	CreateEvent(ctx context.Context, booking *domain.Booking) (string, error)
	UpdateEvent(ctx context.Context, eventID string, booking *domain.Booking) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetCalendarEventID(ctx context.Context, id string, eventID string) error
}

// TaskPublisher интерфейс для повторной постановки задач
type TaskPublisher interface {
	PublishTask(ctx context.Context, task syncqueue.Task) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
