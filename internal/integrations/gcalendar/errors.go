package gcalendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие календаря не найдено
	ErrEventNotFound = errors.New("gcalendar: event not found")

	// ErrInvalidResponse возвращается при некорректном ответе API календаря
	ErrInvalidResponse = errors.New("gcalendar: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcalendar: internal error")
)
