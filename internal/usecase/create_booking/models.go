package create_booking

import (
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	TimeSlotID  string  // ID выбранного слота
	BrandName   string  // Название бренда (обязательно)
	TicketID    string  // Номер тикета; при сохранении остаются только цифры
	Description *string // Описание темы звонка (опционально)
	GuestEmails string  // Дополнительные гости через запятую
}

// Response модель ответа с созданным бронированием
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
