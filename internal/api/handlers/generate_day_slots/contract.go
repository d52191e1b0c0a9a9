package generate_day_slots

import (
	"context"

	allocateDay "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/allocate_day"
)

type AllocateDayUseCase interface {
	Execute(ctx context.Context, req *allocateDay.Request) (*allocateDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
