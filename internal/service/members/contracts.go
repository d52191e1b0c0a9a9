package members

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// MemberRepository интерфейс репозитория участников команды
type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]domain.TeamMember, error)
	SetCalendarStatus(ctx context.Context, id string, connected bool, calendarID *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
