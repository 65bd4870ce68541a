package get_session

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SelectionService interface {
	Get(ctx context.Context, id string) (*domain.BookingSelection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
