package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrIncompleteBooking возвращается, когда выбор неполон (нет услуги,
	// даты или времени). Проверка выполняется ДО любого сетевого вызова
	ErrIncompleteBooking = errors.New("submit_booking: booking selection incomplete")

	// ErrInvalidContact возвращается при незаполненных или некорректных
	// контактных данных. Проверка выполняется ДО любого сетевого вызова
	ErrInvalidContact = errors.New("submit_booking: invalid contact details")

	// ErrBookingFailed возвращается при недоступности сервиса бронирований
	// Введенные данные при этом сохраняются в сессии для повторной отправки
	ErrBookingFailed = errors.New("submit_booking: booking service unavailable")

	// ErrBookingRejected возвращается при бизнес-отказе сервиса бронирований
	// (например, слот уже занят). Детали - в RejectedError
	ErrBookingRejected = errors.New("submit_booking: booking rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// RejectedError бизнес-отказ сервиса бронирований с человекочитаемым
// сообщением из ответа
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrBookingRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrBookingRejected
}
