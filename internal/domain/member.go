package domain

import "time"

// MemberRole represents a team member's role.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// TeamMember represents an internal team member who owns bookable slots.
// Members are created by roster management outside this service and are
// never deleted here.
type TeamMember struct {
	ID                string
	Name              string
	Email             string
	Role              MemberRole
	CalendarConnected bool
	CalendarID        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the member has the admin role.
func (m *TeamMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// HasCalendar returns true if the member has a connected external calendar.
func (m *TeamMember) HasCalendar() bool {
	return m.CalendarConnected && m.CalendarID != nil && *m.CalendarID != ""
}
