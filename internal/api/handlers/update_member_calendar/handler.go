package update_member_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMemberNotFound     = "участник команды не найден"
	msgCalendarIDRequired = "для подключения календаря требуется calendarId"
)

type Handler struct {
	service MemberService
	logger  Logger
}

func NewHandler(service MemberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/team-members/{memberId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["memberId"]

	var req models.UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /team-members/{id}/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.MemberID = memberID

	result, err := h.service.UpdateCalendar(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, members.ErrMemberNotFound):
			h.logger.Warn("PATCH /team-members/{id}/calendar - Member not found: member_id=%s", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, members.ErrCalendarIDRequired):
			h.logger.Warn("PATCH /team-members/{id}/calendar - Calendar id required: member_id=%s", memberID)
			handlers.RespondBadRequest(w, msgCalendarIDRequired)

		default:
			h.logger.Error("PATCH /team-members/{id}/calendar - Failed: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /team-members/{id}/calendar - Updated: member_id=%s, connected=%v",
		memberID, result.CalendarConnected)
	handlers.RespondJSON(w, http.StatusOK, result)
}
