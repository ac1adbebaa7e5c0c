package add_gallery_image

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

type GalleryService interface {
	AddImage(ctx context.Context, req *models.AddImageRequest) (*models.ImageResponse, error)
	AddImageByURL(ctx context.Context, req *models.AddImageByURLRequest) (*models.ImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
