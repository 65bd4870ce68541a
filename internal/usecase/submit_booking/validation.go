package submit_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateContact проверяет контактные данные перед отправкой
// Все три поля обязательны; email дополнительно проверяется по формату
func validateContact(contact domain.ContactDetails) error {
	name := strings.TrimSpace(contact.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	if len(name) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidContact, domain.MaxContactNameLength)
	}

	email := strings.TrimSpace(contact.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	if len(email) > domain.MaxContactEmailLength || !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidContact)
	}

	phone := strings.TrimSpace(contact.Phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	if len(phone) > domain.MaxContactPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidContact, domain.MaxContactPhoneLength)
	}

	return nil
}

// validateSelection проверяет полноту выбора перед отправкой
func validateSelection(sel *domain.BookingSelection) error {
	if sel.Service == nil {
		return fmt.Errorf("%w: service is not selected", ErrIncompleteBooking)
	}
	if sel.Date == nil {
		return fmt.Errorf("%w: date is not selected", ErrIncompleteBooking)
	}
	if sel.Time == nil {
		return fmt.Errorf("%w: time is not selected", ErrIncompleteBooking)
	}
	return nil
}
