package get_team_members

import (
	"context"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members/models"
)

type MemberService interface {
	List(ctx context.Context) (*models.MemberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
