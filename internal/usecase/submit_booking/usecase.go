package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
)

const integrationTarget = "booking_service"

// Usecase сабмиттер бронирования
// Контракт отправки: никакого сетевого вызова при неполном выборе; payload -
// снапшот услуги на момент отправки; никаких автоматических повторов - при
// сбое выбор и контакты сохраняются, решение о повторе за пользователем
type Usecase struct {
	selection     SelectionService
	bookingClient BookingServiceClient
	metrics       MetricsCollector
	logger        Logger
}

// NewUsecase создает новый экземпляр usecase отправки бронирования
func NewUsecase(
	selectionService SelectionService,
	bookingClient BookingServiceClient,
	metrics MetricsCollector,
	logger Logger,
) *Usecase {
	return &Usecase{
		selection:     selectionService,
		bookingClient: bookingClient,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute отправляет бронирование во внешний сервис
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Загрузка сессии
	sel, err := u.selection.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, selection.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	// 2. Контакты из запроса сохраняются в сессии независимо от исхода:
	// при отказе или сбое пользователь не теряет введенное
	contact := domain.ContactDetails{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if sel, err = u.selection.SetContact(ctx, req.SessionID, contact); err != nil {
		if errors.Is(err, selection.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to store contact: %v", ErrInternal, err)
	}

	// 3. Проверки полноты - строго до любого сетевого вызова
	if err := validateSelection(sel); err != nil {
		u.logger.Warn("SubmitBooking: session %s, selection incomplete: %v", req.SessionID, err)
		return nil, err
	}
	if err := validateContact(sel.Contact); err != nil {
		u.logger.Warn("SubmitBooking: session %s, contact invalid: %v", req.SessionID, err)
		return nil, err
	}

	// 4. Снапшот выбора: название, цена и длительность фиксируются
	// на момент отправки
	lang := req.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	payload := &bookingservice.CreateBookingRequest{
		ServiceID:       sel.Service.ID,
		ServiceSlug:     sel.Service.Slug,
		ServiceName:     sel.Service.Name.Resolve(lang),
		Price:           sel.Service.Price,
		DurationMinutes: sel.Service.DurationMinutes,
		Date:            sel.Date.Format(domain.DateFormat),
		Time:            sel.Time.String(),
		Name:            sel.Contact.Name,
		Email:           sel.Contact.Email,
		Phone:           sel.Contact.Phone,
	}

	// 5. Отправка без автоматических повторов
	result, err := u.bookingClient.CreateBooking(ctx, payload)
	if err != nil {
		u.metrics.IncIntegrationRequest(integrationTarget, "error")
		u.logger.Error("SubmitBooking: session %s, booking service call failed: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	if !result.Success {
		u.metrics.IncIntegrationRequest(integrationTarget, "rejected")
		u.logger.Warn("SubmitBooking: session %s, booking rejected: %s", req.SessionID, result.Message)
		return nil, &RejectedError{Message: result.Message}
	}

	u.metrics.IncIntegrationRequest(integrationTarget, "success")

	resp := &Response{
		ConfirmationID: result.ConfirmationID,
		Message:        result.Message,
		ServiceName:    payload.ServiceName,
		Date:           *sel.Date,
		Time:           *sel.Time,
	}

	// 6. Успех: сессия возвращается в исходное состояние на шаге 1
	if _, err := u.selection.Reset(ctx, req.SessionID); err != nil {
		// Бронирование уже создано - сбой сброса не должен превращать
		// успешную отправку в ошибку
		u.logger.Error("SubmitBooking: session %s, reset after success failed: %v", req.SessionID, err)
	}

	u.logger.Info("SubmitBooking: session %s, booking confirmed id=%s", req.SessionID, resp.ConfirmationID)
	return resp, nil
}
