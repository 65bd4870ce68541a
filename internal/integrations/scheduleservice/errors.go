package scheduleservice

import "errors"

var (
	// ErrUnavailable возвращается при транспортных ошибках и 5xx ответах
	// Сигнал для резолвера перейти на офлайн-расписание после исчерпания повторов
	ErrUnavailable = errors.New("scheduleservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном или неполном ответе
	// (отсутствует поле availableSlots, битый JSON)
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")
)
