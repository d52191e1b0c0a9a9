package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrSlotConflict возвращается, когда слот занят конкурентным запросом
	// между проверкой и записью
	ErrSlotConflict = errors.New("create_booking: time slot was taken concurrently")

	// ErrInvalidGuestEmails возвращается, когда среди гостевых адресов есть
	// некорректные; текст ошибки перечисляет все проблемные адреса
	ErrInvalidGuestEmails = errors.New("create_booking: invalid guest emails")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
