package bookingservice

import "errors"

var (
	// ErrUnavailable возвращается при транспортных ошибках и 5xx ответах
	// Повторная отправка на усмотрение пользователя: автоматических ретраев нет,
	// дубликат бронирования - риск корректности
	ErrUnavailable = errors.New("bookingservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")
)
