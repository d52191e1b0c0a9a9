package allocate_day

import "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"

// Request модель запроса на генерацию слотов дня
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// SlotView представление слота в ответе
type SlotView struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	Available bool
	MemberID  string
}

// Response модель ответа со сгенерированными слотами
type Response struct {
	Date        string
	MemberCount int
	Slots       []SlotView
}

func fromDomain(date string, memberCount int, slots []domain.TimeSlot) *Response {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
			MemberID:  s.MemberID,
		})
	}

	return &Response{
		Date:        date,
		MemberCount: memberCount,
		Slots:       views,
	}
}
