package models

import (
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string   `json:"id"`
	BrandName   string   `json:"brandName"`
	TicketID    string   `json:"ticketId"`
	Description *string  `json:"description,omitempty"`
	GuestEmails []string `json:"guestEmails"`

	TimeSlot BookingSlot `json:"timeSlot"`
	MemberID string      `json:"memberId"`
	Status   string      `json:"status"`

	CalendarEventID *string `json:"calendarEventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingSlot снимок слота внутри бронирования
type BookingSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	MemberID  string `json:"memberId"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	MemberID  string `json:"memberId"`
}

// SlotListResponse ответ со слотами даты
type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO. Статус берется
// эффективный: активное бронирование с прошедшим временем окончания
// отдается как completed
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		BrandName:   b.BrandName,
		TicketID:    b.TicketID,
		Description: b.Description,
		GuestEmails: b.GuestEmails,
		TimeSlot: BookingSlot{
			ID:        b.TimeSlot.ID,
			Date:      b.TimeSlot.Date,
			StartTime: b.TimeSlot.StartTime.String(),
			EndTime:   b.TimeSlot.EndTime.String(),
			MemberID:  b.TimeSlot.MemberID,
		},
		MemberID:        b.MemberID,
		Status:          string(b.EffectiveStatus(now)),
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список domain моделей в DTO
func FromDomainBookings(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b, now))
	}
	return &BookingListResponse{Bookings: out}
}

// FromDomainSlots конвертирует слоты даты в DTO
func FromDomainSlots(date string, slots []*domain.TimeSlot) *SlotListResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
			MemberID:  s.MemberID,
		})
	}
	return &SlotListResponse{Date: date, Slots: out}
}
