package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/bookingservice"
)

// SelectionService интерфейс стейт-машины сессии
type SelectionService interface {
	Get(ctx context.Context, id string) (*domain.BookingSelection, error)
	SetContact(ctx context.Context, id string, contact domain.ContactDetails) (*domain.BookingSelection, error)
	Reset(ctx context.Context, id string) (*domain.BookingSelection, error)
}

// BookingServiceClient интерфейс клиента сервиса бронирований
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResult, error)
}

// MetricsCollector интерфейс для счетчиков usecase
type MetricsCollector interface {
	IncIntegrationRequest(target, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
