package reschedule_booking

import (
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID     string // ID переносимого бронирования
	NewTimeSlotID string // ID нового слота
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          string
	BrandName   string
	TicketID    string
	Description *string
	GuestEmails []string

	TimeSlotID string
	Date       string
	StartTime  string
	EndTime    string
	MemberID   string
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		BrandName:   b.BrandName,
		TicketID:    b.TicketID,
		Description: b.Description,
		GuestEmails: b.GuestEmails,
		TimeSlotID:  b.TimeSlot.ID,
		Date:        b.TimeSlot.Date,
		StartTime:   b.TimeSlot.StartTime.String(),
		EndTime:     b.TimeSlot.EndTime.String(),
		MemberID:    b.MemberID,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
