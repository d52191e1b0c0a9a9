package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке перенести отмененное
	// бронирование
	ErrBookingCancelled = errors.New("reschedule_booking: booking is cancelled")

	// ErrSlotNotFound возвращается, когда новый слот не найден
	ErrSlotNotFound = errors.New("reschedule_booking: time slot not found")

	// ErrSlotNotAvailable возвращается, когда новый слот уже занят
	ErrSlotNotAvailable = errors.New("reschedule_booking: time slot is not available")

	// ErrSlotConflict возвращается, когда новый слот занят конкурентным
	// запросом между проверкой и записью
	ErrSlotConflict = errors.New("reschedule_booking: time slot was taken concurrently")

	// ErrSameSlot возвращается при переносе бронирования на его текущий слот
	ErrSameSlot = errors.New("reschedule_booking: booking is already on this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
