package propagate_template

import (
	"errors"
	"net/http"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	propagateTemplate "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/propagate_template"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoTargets          = "не осталось целевых дат после исключения даты-источника"
)

type Handler struct {
	useCase PropagateTemplateUseCase
	logger  Logger
}

func NewHandler(useCase PropagateTemplateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/propagate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PropagateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/propagate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &propagateTemplate.Request{
		SourceDate:  req.SourceDate,
		TargetDates: req.TargetDates,
	})
	if err != nil {
		switch {
		case errors.Is(err, propagateTemplate.ErrInvalidDate):
			h.logger.Warn("POST /slots/propagate - Invalid date: source=%s", req.SourceDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, propagateTemplate.ErrNoTargets):
			h.logger.Warn("POST /slots/propagate - No targets: source=%s", req.SourceDate)
			handlers.RespondBadRequest(w, msgNoTargets)

		default:
			h.logger.Error("POST /slots/propagate - Failed: source=%s, error=%v", req.SourceDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/propagate - Applied template of %s to %d dates",
		result.SourceDate, len(result.AppliedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
