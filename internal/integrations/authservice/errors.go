package authservice

import "errors"

var (
	// ErrUnavailable возвращается при недоступности сервиса аутентификации
	ErrUnavailable = errors.New("authservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")
)
