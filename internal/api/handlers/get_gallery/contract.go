package get_gallery

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

type GalleryService interface {
	List(ctx context.Context, userID string) (*models.ImageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
