package members

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник команды не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrCalendarIDRequired возвращается при подключении календаря без
	// идентификатора, когда у участника его еще нет
	ErrCalendarIDRequired = errors.New("calendar id is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
