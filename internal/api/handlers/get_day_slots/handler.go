package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings"
)

const (
	msgMissingDate = "требуется параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	onlyAvailable := r.URL.Query().Get("available") == "true"

	result, err := h.service.GetDaySlots(r.Context(), date, onlyAvailable)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
