package members

import (
	"context"
	"errors"
	"fmt"

	memberRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/member"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members/models"
)

// Service сервис для работы с участниками команды
type Service struct {
	memberRepo MemberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса участников
func NewService(repo MemberRepository, logger Logger) *Service {
	return &Service{
		memberRepo: repo,
		logger:     logger,
	}
}

// List получает всех участников команды в порядке их добавления
func (s *Service) List(ctx context.Context) (*models.MemberListResponse, error) {
	s.logger.Info("List: fetching team members")

	list, err := s.memberRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMembers(list), nil
}

// UpdateCalendar подключает или отключает календарь участника. При
// подключении без нового идентификатора сохраняется ранее известный;
// при отключении идентификатор очищается
func (s *Service) UpdateCalendar(ctx context.Context, req *models.UpdateCalendarRequest) (*models.MemberResponse, error) {
	s.logger.Info("UpdateCalendar: member=%s, connected=%v", req.MemberID, req.Connected)

	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("UpdateCalendar: member id=%s not found", req.MemberID)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("UpdateCalendar: repository error for member=%s: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: UpdateCalendar - repository error: %v", ErrInternal, err)
	}

	var calendarID *string
	if req.Connected {
		calendarID = req.CalendarID
		if calendarID == nil {
			calendarID = member.CalendarID
		}
		if calendarID == nil {
			s.logger.Warn("UpdateCalendar: member id=%s has no calendar id to connect", req.MemberID)
			return nil, ErrCalendarIDRequired
		}
	}

	if err := s.memberRepo.SetCalendarStatus(ctx, req.MemberID, req.Connected, calendarID); err != nil {
		s.logger.Error("UpdateCalendar: failed to update member=%s: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: UpdateCalendar - failed to update: %v", ErrInternal, err)
	}

	member.CalendarConnected = req.Connected
	member.CalendarID = calendarID

	s.logger.Info("UpdateCalendar: member id=%s calendar connected=%v", req.MemberID, req.Connected)
	return models.FromDomainMember(member), nil
}
