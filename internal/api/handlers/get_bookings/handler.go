package get_bookings

import (
	"net/http"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings/models"
)

const (
	msgInvalidScope = "некорректный параметр scope, ожидается upcoming или past"

	scopeUpcoming = "upcoming"
	scopePast     = "past"
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

// Handle GET /api/v1/bookings?scope=upcoming|past
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = scopeUpcoming
	}

	var (
		result *models.BookingListResponse
		err    error
	)

	switch scope {
	case scopeUpcoming:
		result, err = h.service.GetUpcoming(r.Context())
	case scopePast:
		result, err = h.service.GetPast(r.Context())
	default:
		h.logger.Warn("GET /bookings - Invalid scope: %q", scope)
		handlers.RespondBadRequest(w, msgInvalidScope)
		return
	}

	if err != nil {
		h.logger.Error("GET /bookings - Failed: scope=%s, error=%v", scope, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
