package resolve_availability

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("resolve_availability: session not found")

	// ErrInvalidDate возвращается при дате раньше сегодняшней
	ErrInvalidDate = errors.New("resolve_availability: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Недоступность удаленного источника сюда НЕ входит: она гасится
	// фолбэком и наружу не поднимается
	ErrInternal = errors.New("resolve_availability: internal error")
)
