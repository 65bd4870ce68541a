package selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("selection: session not found")

	// ErrCategoryNotFound возвращается, когда категория не найдена в каталоге
	ErrCategoryNotFound = errors.New("selection: category not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("selection: service not found")

	// ErrInvalidDate возвращается при попытке выбрать дату раньше сегодняшней
	// Состояние сессии при этом не меняется
	ErrInvalidDate = errors.New("selection: date precedes today")

	// ErrNoDateSelected возвращается при выборе времени до выбора даты
	ErrNoDateSelected = errors.New("selection: time chosen before date")

	// ErrInvalidTime возвращается при некорректной метке времени
	ErrInvalidTime = errors.New("selection: invalid time label")

	// ErrStepGate возвращается при переходе вперед с незавершенным шагом
	ErrStepGate = errors.New("selection: step gate not satisfied")

	// ErrInvalidStep возвращается при недопустимом номере шага
	ErrInvalidStep = errors.New("selection: invalid step")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selection: internal error")
)
