package timegrid

import (
	"errors"
	"fmt"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/types"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации сетки слотов
	ErrInvalidConfig = errors.New("timegrid: invalid grid configuration")
)

// Config конфигурация дневной сетки слотов
type Config struct {
	StartHour       int // час начала рабочего окна (0-23)
	EndHour         int // час конца рабочего окна (1-24)
	IntervalMinutes int // длительность слота в минутах
}

// DefaultConfig возвращает стандартную сетку: 09:00-17:00 с шагом 30 минут,
// включая обеденные слоты, всего 16 окон в день
func DefaultConfig() Config {
	return Config{
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		IntervalMinutes: domain.DefaultIntervalMinutes,
	}
}

// Validate проверяет, что конфигурация задаёт корректное рабочее окно
// и что интервал делит окно нацело
func (c Config) Validate() error {
	if c.StartHour < 0 || c.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidConfig, c.StartHour)
	}
	if c.EndHour < 1 || c.EndHour > 24 {
		return fmt.Errorf("%w: end hour %d out of range", ErrInvalidConfig, c.EndHour)
	}
	if c.EndHour <= c.StartHour {
		return fmt.Errorf("%w: end hour %d must be after start hour %d", ErrInvalidConfig, c.EndHour, c.StartHour)
	}
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: interval %d must be positive", ErrInvalidConfig, c.IntervalMinutes)
	}
	if ((c.EndHour-c.StartHour)*60)%c.IntervalMinutes != 0 {
		return fmt.Errorf("%w: interval %d does not divide the %d-%d window evenly",
			ErrInvalidConfig, c.IntervalMinutes, c.StartHour, c.EndHour)
	}
	return nil
}

// Window одно окно дневного шаблона
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// GenerateTemplate генерирует упорядоченный дневной шаблон: непрерывную
// последовательность неперекрывающихся окон от StartHour до EndHour с шагом
// IntervalMinutes. Чистая функция конфигурации, побочных эффектов нет
func GenerateTemplate(cfg Config) ([]Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	total := ((cfg.EndHour - cfg.StartHour) * 60) / cfg.IntervalMinutes
	windows := make([]Window, 0, total)

	current := types.TimeString(fmt.Sprintf("%02d:00", cfg.StartHour))
	for i := 0; i < total; i++ {
		end, err := current.AddMinutes(cfg.IntervalMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		windows = append(windows, Window{Start: current, End: end})
		current = end
	}

	return windows, nil
}

// Allocate распределяет окна шаблона между участниками команды для указанной
// даты. Шаблон разбивается на непрерывные блоки размера
// ceil(len(template)/len(members)); блок i достаётся members[i mod len(members)].
// Каждый участник получает непрерывный диапазон слотов, а не чередование.
//
// Пустой список участников даёт пустой результат без ошибки.
// Идентификаторы слотов детерминированы по паре (дата, начало), поэтому
// результат для даты полностью заменяет её слоты, а не сливается с ними
func Allocate(date string, template []Window, members []domain.TeamMember) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(template))
	if len(members) == 0 || len(template) == 0 {
		return slots
	}

	blockSize := (len(template) + len(members) - 1) / len(members)

	for i, w := range template {
		member := members[(i/blockSize)%len(members)]
		slots = append(slots, domain.TimeSlot{
			ID:        domain.SlotID(date, w.Start),
			Date:      date,
			StartTime: w.Start,
			EndTime:   w.End,
			Available: true,
			MemberID:  member.ID,
		})
	}

	return slots
}
