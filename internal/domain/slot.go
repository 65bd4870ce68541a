package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SlotQuery ключ запроса доступности: дата + опциональная услуга
type SlotQuery struct {
	Date      time.Time
	ServiceID *int64
}

// CacheKey возвращает строковый ключ для кэша доступности
func (q SlotQuery) CacheKey() string {
	if q.ServiceID == nil {
		return q.Date.Format(DateFormat)
	}
	return fmt.Sprintf("%s|%d", q.Date.Format(DateFormat), *q.ServiceID)
}

// SlotResult результат резолвера доступности
type SlotResult struct {
	Query SlotQuery

	// Slots упорядоченный список меток времени; пустой список - полностью
	// занятый день, а не ошибка
	Slots []types.TimeString

	// Degraded true, когда слоты сгенерированы офлайн-расписанием
	// (удаленный источник недоступен); UI обязан это раскрыть
	Degraded bool

	ResolvedAt time.Time
}

// IsEmpty возвращает true, если свободных слотов нет
func (r SlotResult) IsEmpty() bool {
	return len(r.Slots) == 0
}

// Contains возвращает true, если метка времени присутствует в результате
func (r SlotResult) Contains(label types.TimeString) bool {
	for _, s := range r.Slots {
		if s == label {
			return true
		}
	}
	return false
}
