package get_day_slots

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings/models"
)

type BookingService interface {
	GetDaySlots(ctx context.Context, date string, onlyAvailable bool) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
