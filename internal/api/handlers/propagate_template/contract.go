package propagate_template

import (
	"context"

	propagateTemplate "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/propagate_template"
)

type PropagateTemplateUseCase interface {
	Execute(ctx context.Context, req *propagateTemplate.Request) (*propagateTemplate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
