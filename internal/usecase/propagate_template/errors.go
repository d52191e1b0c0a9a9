package propagate_template

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("propagate_template: invalid date")

	// ErrNoTargets возвращается, когда после фильтрации не осталось целевых дат
	ErrNoTargets = errors.New("propagate_template: no target dates")

	// ErrInvalidGrid возвращается при некорректной конфигурации сетки
	ErrInvalidGrid = errors.New("propagate_template: invalid grid configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("propagate_template: internal error")
)
