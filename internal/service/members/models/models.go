package models

import (
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// UpdateCalendarRequest запрос на изменение подключения календаря
type UpdateCalendarRequest struct {
	MemberID   string  `json:"-"`
	Connected  bool    `json:"connected"`
	CalendarID *string `json:"calendarId,omitempty"`
}

// MemberResponse ответ с данными участника команды
type MemberResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	CalendarConnected bool    `json:"calendarConnected"`
	CalendarID        *string `json:"calendarId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberListResponse ответ со списком участников
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// FromDomainMember конвертирует domain модель в DTO
func FromDomainMember(m *domain.TeamMember) *MemberResponse {
	if m == nil {
		return nil
	}

	return &MemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		Role:              string(m.Role),
		CalendarConnected: m.CalendarConnected,
		CalendarID:        m.CalendarID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomainMembers конвертирует список domain моделей в DTO
func FromDomainMembers(list []domain.TeamMember) *MemberListResponse {
	out := make([]MemberResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromDomainMember(&list[i]))
	}
	return &MemberListResponse{Members: out}
}
