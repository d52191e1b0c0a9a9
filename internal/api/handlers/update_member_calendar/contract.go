package update_member_calendar

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members/models"
)

type MemberService interface {
	UpdateCalendar(ctx context.Context, req *models.UpdateCalendarRequest) (*models.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
