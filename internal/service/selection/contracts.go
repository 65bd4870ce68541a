package selection

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SessionStore интерфейс хранилища сессий бронирования
// Get возвращает копию состояния; Update выполняет мутацию под локом записи
// и возвращает копию нового состояния
type SessionStore interface {
	Save(selection *domain.BookingSelection)
	Get(id string) (*domain.BookingSelection, error)
	Update(id string, fn func(*domain.BookingSelection) error) (*domain.BookingSelection, error)
	Delete(id string)
}

// CatalogProvider интерфейс каталога услуг
type CatalogProvider interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.ServiceCategory, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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
