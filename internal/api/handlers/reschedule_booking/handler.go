package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
	rescheduleBooking "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные переноса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "отмененное бронирование нельзя перенести"
	msgSlotNotFound       = "новый временной слот не найден"
	msgSlotNotAvailable   = "новый временной слот недоступен"
	msgSlotConflict       = "слот только что был занят, выберите другой"
	msgSameSlot           = "бронирование уже находится в этом слоте"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{
		BookingID:     bookingID,
		NewTimeSlotID: req.NewTimeSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, rescheduleBooking.ErrSlotNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not found: slot_id=%s", req.NewTimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: slot_id=%s", req.NewTimeSlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot taken concurrently: slot_id=%s", req.NewTimeSlotID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrSameSlot):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Same slot: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgSameSlot)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%s, slot_id=%s",
		result.ID, result.TimeSlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
