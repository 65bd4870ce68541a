package resolve_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	SessionID string    // ID сессии бронирования
	Date      time.Time // Дата (без времени)
	ServiceID *int64    // ID услуги (опционально)
}

// Response модель ответа резолвера доступности
type Response struct {
	Date      time.Time          // Дата, на которую запрашивались слоты
	ServiceID *int64             // ID услуги (если был указан)
	Slots     []types.TimeString // Упорядоченный список свободных меток времени

	// Degraded true, когда слоты взяты из офлайн-расписания
	// UI обязан показать индикатор деградации
	Degraded bool

	// FromCache true, когда результат взят из сессионного кэша
	FromCache bool
}
