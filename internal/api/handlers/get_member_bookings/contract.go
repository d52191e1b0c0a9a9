package get_member_bookings

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings/models"
)

type BookingService interface {
	GetMemberBookings(ctx context.Context, memberID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
