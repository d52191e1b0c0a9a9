package generate_day_slots

import (
	"errors"
	"net/http"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	allocateDay "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/allocate_day"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase AllocateDayUseCase
	logger  Logger
}

func NewHandler(useCase AllocateDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateDaySlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &allocateDay.Request{Date: req.Date})
	if err != nil {
		switch {
		case errors.Is(err, allocateDay.ErrInvalidDate):
			h.logger.Warn("POST /slots/generate - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /slots/generate - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate - Generated %d slots for date=%s across %d members",
		len(result.Slots), result.Date, result.MemberCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
