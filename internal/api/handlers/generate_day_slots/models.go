package generate_day_slots

import (
	allocateDay "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/allocate_day"
)

// GenerateDaySlotsRequest HTTP request model
type GenerateDaySlotsRequest struct {
	Date string `json:"date"` // "2026-03-10"
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	MemberID  string `json:"memberId"`
}

// GenerateDaySlotsResponse HTTP response model
type GenerateDaySlotsResponse struct {
	Date        string         `json:"date"`
	MemberCount int            `json:"memberCount"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateDay.Response) *GenerateDaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
			MemberID:  s.MemberID,
		})
	}

	return &GenerateDaySlotsResponse{
		Date:        resp.Date,
		MemberCount: resp.MemberCount,
		Slots:       slots,
	}
}
