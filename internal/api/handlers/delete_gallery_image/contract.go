package delete_gallery_image

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

type GalleryService interface {
	DeleteImage(ctx context.Context, req *models.DeleteImageRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
