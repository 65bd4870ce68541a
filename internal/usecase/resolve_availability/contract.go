package resolve_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleServiceClient интерфейс клиента сервиса расписания
type ScheduleServiceClient interface {
	GetAvailableSlots(ctx context.Context, date time.Time, serviceID *int64) ([]types.TimeString, error)
}

// SelectionService интерфейс стейт-машины сессии
// Используется для сессионного кэша и защиты от устаревших ответов
type SelectionService interface {
	CachedSlots(ctx context.Context, id string, query domain.SlotQuery) (*domain.SlotResult, bool, error)
	StoreSlots(ctx context.Context, id string, result domain.SlotResult) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsCollector интерфейс для счетчиков usecase
// Реализация обязана быть безопасной при выключенных метриках
type MetricsCollector interface {
	IncIntegrationRequest(target, outcome string)
	IncFallbackResolution(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
