package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// emailPattern стандартный шаблон адреса local@domain.tld
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// nonDigits всё, что не цифра - вырезается из номера тикета
var nonDigits = regexp.MustCompile(`\D`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TimeSlotID) == "" {
		return fmt.Errorf("%w: timeSlotId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BrandName) == "" {
		return fmt.Errorf("%w: brandName is required", ErrInvalidInput)
	}

	if len(req.BrandName) > domain.MaxBrandNameLength {
		return fmt.Errorf("%w: brandName exceeds %d characters", ErrInvalidInput, domain.MaxBrandNameLength)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

// parseGuestEmails разбирает список гостей через запятую: пробелы обрезаются,
// пустые элементы отбрасываются. Если среди оставшихся есть некорректные
// адреса, вся операция отклоняется - ошибка перечисляет каждый из них
func parseGuestEmails(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")

	emails := make([]string, 0, len(parts))
	invalid := make([]string, 0)

	for _, part := range parts {
		email := strings.TrimSpace(part)
		if email == "" {
			continue
		}
		if !emailPattern.MatchString(email) {
			invalid = append(invalid, email)
			continue
		}
		emails = append(emails, email)
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGuestEmails, strings.Join(invalid, ", "))
	}

	if len(emails) > domain.MaxGuestEmails {
		return nil, fmt.Errorf("%w: at most %d guests allowed", ErrInvalidInput, domain.MaxGuestEmails)
	}

	return emails, nil
}

// normalizeTicketID оставляет в номере тикета только цифры
func normalizeTicketID(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}
