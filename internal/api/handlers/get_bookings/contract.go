package get_bookings

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings/models"
)

type BookingService interface {
	GetUpcoming(ctx context.Context) (*models.BookingListResponse, error)
	GetPast(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
