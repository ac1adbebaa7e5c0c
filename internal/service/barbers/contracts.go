package barbers

import (
	"context"

	"github.com/lubooking/booking-service/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Barber, error)
	ListActive(ctx context.Context) ([]*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActiveByBarber(ctx context.Context, barberID int64) ([]*domain.Service, error)
}

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.GalleryImage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
