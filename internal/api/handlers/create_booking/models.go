package create_booking

import (
	"time"

	createBooking "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TimeSlotID  string  `json:"timeSlotId"`
	BrandName   string  `json:"brandName"`
	TicketID    string  `json:"ticketId"`
	Description *string `json:"description,omitempty"`
	GuestEmails string  `json:"guestEmails"` // адреса через запятую
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		TimeSlotID:  r.TimeSlotID,
		BrandName:   r.BrandName,
		TicketID:    r.TicketID,
		Description: r.Description,
		GuestEmails: r.GuestEmails,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
