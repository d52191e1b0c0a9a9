package gcalendar

import (
	"fmt"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// EventTime временная граница события в формате API календаря
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EventAttendee участник события
type EventAttendee struct {
	Email string `json:"email"`
}

// EventRequest тело запроса на создание/обновление события
type EventRequest struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Start       EventTime       `json:"start"`
	End         EventTime       `json:"end"`
	Attendees   []EventAttendee `json:"attendees,omitempty"`
}

// EventResponse ответ API календаря на создание события
type EventResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// eventFromBooking собирает тело события из бронирования
func eventFromBooking(b *domain.Booking, loc *time.Location) (*EventRequest, error) {
	start, err := b.TimeSlot.StartsAt(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot start: %v", ErrInternal, err)
	}
	end, err := b.TimeSlot.EndsAt(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot end: %v", ErrInternal, err)
	}

	attendees := make([]EventAttendee, 0, len(b.GuestEmails))
	for _, email := range b.GuestEmails {
		attendees = append(attendees, EventAttendee{Email: email})
	}

	description := ""
	if b.Description != nil {
		description = *b.Description
	}

	return &EventRequest{
		Summary:     fmt.Sprintf("MerchantCare call: %s (#%s)", b.BrandName, b.TicketID),
		Description: description,
		Start:       EventTime{DateTime: start.Format(time.RFC3339), TimeZone: loc.String()},
		End:         EventTime{DateTime: end.Format(time.RFC3339), TimeZone: loc.String()},
		Attendees:   attendees,
	}, nil
}
