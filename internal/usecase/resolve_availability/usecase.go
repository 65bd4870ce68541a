package resolve_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const integrationTarget = "schedule_service"

// Usecase резолвер доступных слотов
// Порядок источников: сессионный кэш -> удаленное расписание (с повторами) ->
// офлайн-расписание. Недоступность удаленного источника никогда не блокирует
// поток бронирования: ответ деградирует до фолбэка с флагом Degraded
type Usecase struct {
	scheduleClient ScheduleServiceClient
	selection      SelectionService
	fallback       FallbackSchedule
	timeProvider   TimeProvider
	metrics        MetricsCollector
	logger         Logger

	// retryAttempts число повторов ПОСЛЕ первой попытки
	retryAttempts int
	retryDelay    time.Duration
}

// NewUsecase создает новый экземпляр usecase резолвера доступности
func NewUsecase(
	scheduleClient ScheduleServiceClient,
	selectionService SelectionService,
	fallback FallbackSchedule,
	timeProvider TimeProvider,
	metrics MetricsCollector,
	logger Logger,
	retryAttempts int,
	retryDelay time.Duration,
) *Usecase {
	return &Usecase{
		scheduleClient: scheduleClient,
		selection:      selectionService,
		fallback:       fallback,
		timeProvider:   timeProvider,
		metrics:        metrics,
		logger:         logger,
		retryAttempts:  retryAttempts,
		retryDelay:     retryDelay,
	}
}

// Execute возвращает доступные слоты для даты и (опционально) услуги
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	now := u.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		u.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	query := domain.SlotQuery{
		Date:      req.Date,
		ServiceID: req.ServiceID,
	}

	// 2. Проверка сессионного кэша: повторный запрос той же пары
	// (дата, услуга) в рамках сессии не ходит к удаленному источнику
	cached, ok, err := u.selection.CachedSlots(ctx, req.SessionID, query)
	if err != nil {
		if errors.Is(err, selection.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		u.logger.Error("ResolveAvailability: cache lookup failed: %v", err)
		return nil, fmt.Errorf("%w: cache lookup: %v", ErrInternal, err)
	}
	if ok {
		u.logger.Info("ResolveAvailability: cache hit for session=%s key=%s", req.SessionID, query.CacheKey())
		return u.buildResponse(req, cached.Slots, cached.Degraded, true), nil
	}

	// 3. Удаленный источник с повторами
	slots, fetchErr := u.fetchRemote(ctx, req.Date, req.ServiceID)

	var result domain.SlotResult
	if fetchErr != nil {
		// 4. Повторы исчерпаны - офлайн-расписание
		// Пустой удаленный ответ сюда НЕ попадает: это валидное
		// состояние "слотов нет", а не повод для фолбэка
		reason := fallbackReason(fetchErr)
		u.logger.Warn("ResolveAvailability: remote source failed (%s), using fallback schedule: %v", reason, fetchErr)
		u.metrics.IncFallbackResolution(reason)

		result = domain.SlotResult{
			Query:      query,
			Slots:      u.fallback.Generate(query, now),
			Degraded:   true,
			ResolvedAt: now,
		}
	} else {
		result = domain.SlotResult{
			Query:      query,
			Slots:      slots,
			Degraded:   false,
			ResolvedAt: now,
		}
	}

	// 5. Сохранение в сессию: кэш пополняется всегда, а текущие слоты
	// обновляются только если выбор в сессии все еще соответствует запросу
	if err := u.selection.StoreSlots(ctx, req.SessionID, result); err != nil {
		if errors.Is(err, selection.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		u.logger.Error("ResolveAvailability: store slots failed: %v", err)
		return nil, fmt.Errorf("%w: store slots: %v", ErrInternal, err)
	}

	u.logger.Info("ResolveAvailability: resolved %d slots for session=%s key=%s (degraded=%t)",
		len(result.Slots), req.SessionID, query.CacheKey(), result.Degraded)

	return u.buildResponse(req, result.Slots, result.Degraded, false), nil
}

// fetchRemote опрашивает сервис расписания с фиксированной паузой между
// повторами. Ошибка возвращается только после исчерпания всех попыток
func (u *Usecase) fetchRemote(ctx context.Context, date time.Time, serviceID *int64) ([]types.TimeString, error) {
	attempts := 1 + u.retryAttempts

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		slots, err := u.scheduleClient.GetAvailableSlots(ctx, date, serviceID)
		if err == nil {
			u.metrics.IncIntegrationRequest(integrationTarget, "success")
			return slots, nil
		}

		lastErr = err
		u.metrics.IncIntegrationRequest(integrationTarget, "error")
		u.logger.Warn("ResolveAvailability: attempt %d/%d failed: %v", attempt, attempts, err)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch canceled: %w", ctx.Err())
		case <-time.After(u.retryDelay):
		}
	}

	return nil, lastErr
}

func (u *Usecase) buildResponse(req Request, slots []types.TimeString, degraded, fromCache bool) *Response {
	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
		Degraded:  degraded,
		FromCache: fromCache,
	}
}

func fallbackReason(err error) string {
	if errors.Is(err, scheduleservice.ErrInvalidResponse) {
		return "invalid_response"
	}
	return "unavailable"
}
