package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Step шаг процесса бронирования
type Step int

const (
	StepServiceSelection Step = 1
	StepDateTime         Step = 2
	StepDetails          Step = 3
)

// Valid возвращает true для допустимого номера шага
func (s Step) Valid() bool {
	return s >= StepServiceSelection && s <= StepDetails
}

// String возвращает человекочитаемое имя шага
func (s Step) String() string {
	switch s {
	case StepServiceSelection:
		return "service_selection"
	case StepDateTime:
		return "date_time"
	case StepDetails:
		return "details"
	default:
		return "unknown"
	}
}

// ContactDetails контактные данные клиента
type ContactDetails struct {
	Name  string
	Email string
	Phone string
}

// IsComplete возвращает true, если все обязательные поля заполнены
func (c ContactDetails) IsComplete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// BookingSelection состояние сессии бронирования
// Мутируется только через операции стейт-машины (service/selection)
//
// Инварианты:
// - Time != nil => Date != nil
// - Service != nil => CategorySlug != nil и Service.CategorySlug == *CategorySlug
type BookingSelection struct {
	ID           string
	Step         Step
	CategorySlug *string
	Service      *Service
	Date         *time.Time
	Time         *types.TimeString
	Contact      ContactDetails

	// CurrentSlots последний результат резолвера для текущей выбранной даты
	// Обновляется только когда ключ результата совпадает с текущим выбором
	CurrentSlots *SlotResult

	// SlotCache кэш результатов доступности за сессию, ключ - SlotQuery.CacheKey()
	// Записи не инвалидируются в течение сессии
	SlotCache map[string]SlotResult

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingSelection создает пустую сессию на первом шаге
func NewBookingSelection(id string, now time.Time) *BookingSelection {
	return &BookingSelection{
		ID:        id,
		Step:      StepServiceSelection,
		SlotCache: make(map[string]SlotResult),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone возвращает независимую копию состояния сессии
// Указатель на Service разделяется сознательно: каталог неизменяем в течение
// сессии. Слайсы слотов внутри SlotResult не мутируются после записи
func (b *BookingSelection) Clone() *BookingSelection {
	clone := *b

	if b.CategorySlug != nil {
		v := *b.CategorySlug
		clone.CategorySlug = &v
	}
	if b.Date != nil {
		v := *b.Date
		clone.Date = &v
	}
	if b.Time != nil {
		v := *b.Time
		clone.Time = &v
	}
	if b.CurrentSlots != nil {
		v := *b.CurrentSlots
		clone.CurrentSlots = &v
	}

	clone.SlotCache = make(map[string]SlotResult, len(b.SlotCache))
	for key, result := range b.SlotCache {
		clone.SlotCache[key] = result
	}

	return &clone
}

// HasService возвращает true, если услуга выбрана
func (b *BookingSelection) HasService() bool {
	return b.Service != nil
}

// HasDateTime возвращает true, если выбраны и дата, и время
func (b *BookingSelection) HasDateTime() bool {
	return b.Date != nil && b.Time != nil && !b.Time.IsZero()
}

// StepGateSatisfied проверяет условие завершенности указанного шага
// Шаг 1 требует выбранную услугу, шаг 2 - дату и время, шаг 3 терминальный
func (b *BookingSelection) StepGateSatisfied(step Step) bool {
	switch step {
	case StepServiceSelection:
		return b.HasService()
	case StepDateTime:
		return b.HasDateTime()
	case StepDetails:
		return false
	default:
		return false
	}
}

// ReadyToSubmit возвращает true, если выбор полон и контакты заполнены
func (b *BookingSelection) ReadyToSubmit() bool {
	return b.HasService() && b.HasDateTime() && b.Contact.IsComplete()
}

// Clear сбрасывает сессию в исходное пустое состояние на шаге 1
// Кэш доступности сохраняется: слоты считаются стабильными в рамках сессии
func (b *BookingSelection) Clear(now time.Time) {
	b.Step = StepServiceSelection
	b.CategorySlug = nil
	b.Service = nil
	b.Date = nil
	b.Time = nil
	b.Contact = ContactDetails{}
	b.CurrentSlots = nil
	b.UpdatedAt = now
}

// MatchesQuery возвращает true, если ключ запроса соответствует текущему выбору
// Используется как защита от устаревших ответов резолвера
func (b *BookingSelection) MatchesQuery(q SlotQuery) bool {
	if b.Date == nil || !isSameDay(*b.Date, q.Date) {
		return false
	}
	var selectedServiceID *int64
	if b.Service != nil {
		selectedServiceID = &b.Service.ID
	}
	if (selectedServiceID == nil) != (q.ServiceID == nil) {
		return false
	}
	if selectedServiceID != nil && *selectedServiceID != *q.ServiceID {
		return false
	}
	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	return isSameDay(date1, date2)
}
