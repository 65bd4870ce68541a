package create_session

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SelectionService interface {
	Create(ctx context.Context, seedSlug *string) (*domain.BookingSelection, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
