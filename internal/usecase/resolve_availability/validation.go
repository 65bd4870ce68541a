package resolve_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет входные данные запроса доступности
func validateRequest(req Request, now time.Time) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Даты в прошлом недоступны для записи
	if domain.IsDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date %s precedes today", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	return nil
}
