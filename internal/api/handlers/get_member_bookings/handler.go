package get_member_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings"
)

const (
	msgMemberNotFound = "участник команды не найден"
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

// Handle GET /api/v1/team-members/{memberId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["memberId"]

	result, err := h.service.GetMemberBookings(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrMemberNotFound):
			h.logger.Warn("GET /team-members/{id}/bookings - Member not found: member_id=%s", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /team-members/{id}/bookings - Failed: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
