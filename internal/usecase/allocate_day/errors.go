package allocate_day

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("allocate_day: invalid date")

	// ErrInvalidGrid возвращается при некорректной конфигурации сетки
	ErrInvalidGrid = errors.New("allocate_day: invalid grid configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_day: internal error")
)
