package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewTimeSlotID string `json:"newTimeSlotId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string   `json:"id"`
	BrandName   string   `json:"brandName"`
	TicketID    string   `json:"ticketId"`
	Description *string  `json:"description,omitempty"`
	GuestEmails []string `json:"guestEmails"`
	TimeSlotID  string   `json:"timeSlotId"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	MemberID    string   `json:"memberId"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BrandName:   resp.BrandName,
		TicketID:    resp.TicketID,
		Description: resp.Description,
		GuestEmails: resp.GuestEmails,
		TimeSlotID:  resp.TimeSlotID,
		Date:        resp.Date,
		StartTime:   resp.StartTime,
		EndTime:     resp.EndTime,
		MemberID:    resp.MemberID,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
