package gallery

import (
	"context"
	"io"

	"github.com/lubooking/booking-service/internal/domain"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.GalleryImage, error)
	Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Barber, error)
	UpdateLogo(ctx context.Context, barberID int64, logoURL *string) error
}

// BlobStore интерфейс объектного хранилища изображений
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
