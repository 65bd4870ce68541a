package select_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SelectionService interface {
	SelectDate(ctx context.Context, id string, date time.Time) (*domain.BookingSelection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
