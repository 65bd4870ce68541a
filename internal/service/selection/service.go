package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/sessionstore"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service стейт-машина сессии бронирования
// Все мутации BookingSelection проходят только через операции этого сервиса:
// каждая операция проверяет guard-условие и либо отклоняет переход, оставляя
// состояние нетронутым, либо применяет его. Мутации выполняются хранилищем
// под локом записи сессии: конкурентные запросы по одной сессии
// сериализуются, а не гоняются за общим состоянием
//
// Шаги линейны: выбор услуги -> дата и время -> контактные данные
type Service struct {
	store        SessionStore
	catalog      CatalogProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр стейт-машины
func NewService(store SessionStore, catalog CatalogProvider, logger Logger) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает пустую сессию на шаге 1
// При непустом seedSlug выбор предзаполняется услугой из deep-link параметра
// service=<slug>; несуществующий slug не является ошибкой - сессия создается
// пустой, а клиент в любом случае обязан убрать параметр из URL (replace)
func (s *Service) Create(ctx context.Context, seedSlug *string) (*domain.BookingSelection, bool, error) {
	now := s.timeProvider.Now()
	sel := domain.NewBookingSelection(uuid.NewString(), now)

	seeded := false
	if seedSlug != nil && *seedSlug != "" {
		service, err := s.catalog.GetServiceBySlug(ctx, *seedSlug)
		switch {
		case err == nil:
			sel.Service = service
			sel.CategorySlug = &service.CategorySlug
			seeded = true
			s.logger.Info("Create: session %s seeded from slug %q (service id=%d)", sel.ID, *seedSlug, service.ID)
		case errors.Is(err, catalog.ErrServiceNotFound):
			s.logger.Warn("Create: seed slug %q not found, starting empty session", *seedSlug)
		default:
			return nil, false, fmt.Errorf("%w: failed to resolve seed slug: %v", ErrInternal, err)
		}
	}

	s.store.Save(sel)
	s.logger.Info("Create: session %s created at step %d", sel.ID, sel.Step)
	return sel, seeded, nil
}

// Get возвращает сессию по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.BookingSelection, error) {
	sel, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}
	return sel, nil
}

// SelectCategory выбирает категорию услуг
// Если текущая услуга не принадлежит новой категории, услуга сбрасывается
func (s *Service) SelectCategory(ctx context.Context, id, categorySlug string) (*domain.BookingSelection, error) {
	if _, err := s.catalog.GetCategoryBySlug(ctx, categorySlug); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			s.logger.Warn("SelectCategory: session %s, category %q not found", id, categorySlug)
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	return s.update(id, func(sel *domain.BookingSelection) error {
		sel.CategorySlug = &categorySlug
		if sel.Service != nil && !sel.Service.BelongsTo(categorySlug) {
			s.logger.Info("SelectCategory: session %s, service id=%d incompatible with category %q, cleared",
				id, sel.Service.ID, categorySlug)
			sel.Service = nil
		}
		sel.UpdatedAt = now
		return nil
	})
}

// SelectService выбирает услугу
// Категория выставляется по услуге: инвариант "услуга принадлежит выбранной
// категории" сохраняется при выборе из общего списка без фильтра
func (s *Service) SelectService(ctx context.Context, id string, serviceID int64) (*domain.BookingSelection, error) {
	service, err := s.catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			s.logger.Warn("SelectService: session %s, service id=%d not found", id, serviceID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		sel.Service = service
		sel.CategorySlug = &service.CategorySlug
		sel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectService: session %s, service id=%d selected", id, serviceID)
	return sel, nil
}

// SelectDate выбирает дату бронирования
// Дата в прошлом отклоняется; смена даты сбрасывает выбранное время и
// показанные слоты - они относились к прежней дате
func (s *Service) SelectDate(ctx context.Context, id string, date time.Time) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		if domain.IsDateInPast(date, now) {
			s.logger.Warn("SelectDate: session %s, date %s precedes today", id, date.Format(domain.DateFormat))
			return ErrInvalidDate
		}

		sel.Date = &date
		sel.Time = nil
		sel.CurrentSlots = nil
		sel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectDate: session %s, date %s selected", id, date.Format(domain.DateFormat))
	return sel, nil
}

// SelectTime выбирает метку времени
// Валидна только в сочетании с выбранной датой
func (s *Service) SelectTime(ctx context.Context, id string, label types.TimeString) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		if sel.Date == nil {
			s.logger.Warn("SelectTime: session %s, time chosen before date", id)
			return ErrNoDateSelected
		}

		if err := label.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}

		sel.Time = &label
		sel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectTime: session %s, time %s selected", id, label)
	return sel, nil
}

// Advance переходит на следующий шаг
// Отклоняется, если условие завершенности текущего шага не выполнено;
// с терминального шага 3 перехода вперед нет
func (s *Service) Advance(ctx context.Context, id string) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		if sel.Step == domain.StepDetails {
			s.logger.Warn("Advance: session %s, step %d is terminal", id, sel.Step)
			return fmt.Errorf("%w: step %d is terminal", ErrStepGate, sel.Step)
		}

		if !sel.StepGateSatisfied(sel.Step) {
			s.logger.Warn("Advance: session %s, gate for step %d not satisfied", id, sel.Step)
			return fmt.Errorf("%w: step %d incomplete", ErrStepGate, sel.Step)
		}

		sel.Step++
		sel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Advance: session %s, now at step %d", id, sel.Step)
	return sel, nil
}

// Retreat возвращается на предыдущий шаг
// С первого шага - no-op, выбор не меняется
func (s *Service) Retreat(ctx context.Context, id string) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		if sel.Step > domain.StepServiceSelection {
			sel.Step--
			sel.UpdatedAt = now
			s.logger.Info("Retreat: session %s, now at step %d", id, sel.Step)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sel, nil
}

// GoToStep переходит на указанный шаг по индикатору шагов
// Назад - всегда свободно; вперед - только когда выполнены гейты всех
// промежуточных шагов
func (s *Service) GoToStep(ctx context.Context, id string, step domain.Step) (*domain.BookingSelection, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		for cur := sel.Step; cur < step; cur++ {
			if !sel.StepGateSatisfied(cur) {
				s.logger.Warn("GoToStep: session %s, gate for step %d not satisfied", id, cur)
				return fmt.Errorf("%w: step %d incomplete", ErrStepGate, cur)
			}
		}

		sel.Step = step
		sel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GoToStep: session %s, now at step %d", id, sel.Step)
	return sel, nil
}

// SetContact сохраняет контактные данные в сессии
// Полнота полей проверяется сабмиттером перед отправкой, а не здесь:
// частично заполненная форма - легитимное промежуточное состояние
func (s *Service) SetContact(ctx context.Context, id string, contact domain.ContactDetails) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	return s.update(id, func(sel *domain.BookingSelection) error {
		sel.Contact = contact
		sel.UpdatedAt = now
		return nil
	})
}

// Reset сбрасывает сессию в исходное состояние на шаге 1
// Вызывается после успешной отправки бронирования или явной отмены
func (s *Service) Reset(ctx context.Context, id string) (*domain.BookingSelection, error) {
	now := s.timeProvider.Now()
	sel, err := s.update(id, func(sel *domain.BookingSelection) error {
		sel.Clear(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reset: session %s cleared", id)
	return sel, nil
}

// CachedSlots возвращает закэшированный результат доступности за сессию
func (s *Service) CachedSlots(ctx context.Context, id string, query domain.SlotQuery) (*domain.SlotResult, bool, error) {
	sel, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	result, ok := sel.SlotCache[query.CacheKey()]
	if !ok {
		return nil, false, nil
	}
	return &result, true, nil
}

// StoreSlots сохраняет результат резолвера в кэш сессии
// Защита от устаревших ответов: CurrentSlots обновляется только когда ключ
// результата совпадает с текущим выбором - медленный ответ для прежней даты
// не затирает слоты, показанные для новой
func (s *Service) StoreSlots(ctx context.Context, id string, result domain.SlotResult) error {
	_, err := s.update(id, func(sel *domain.BookingSelection) error {
		sel.SlotCache[result.Query.CacheKey()] = result

		if sel.MatchesQuery(result.Query) {
			sel.CurrentSlots = &result
		} else {
			s.logger.Info("StoreSlots: session %s, stale result for key %s discarded (selection changed)",
				id, result.Query.CacheKey())
		}
		return nil
	})
	return err
}

// update выполняет мутацию сессии под локом записи хранилища
// Ошибки guard-условий из fn проходят наружу без переупаковки
func (s *Service) update(id string, fn func(*domain.BookingSelection) error) (*domain.BookingSelection, error) {
	sel, err := s.store.Update(id, fn)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sel, nil
}
