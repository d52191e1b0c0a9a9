package propagate_template

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// MemberRepository интерфейс репозитория участников команды
type MemberRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByDate(ctx context.Context, date string, onlyAvailable bool) ([]*domain.TimeSlot, error)
	ReplaceForDate(ctx context.Context, date string, slots []*domain.TimeSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
