package set_logo

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

type GalleryService interface {
	SetLogo(ctx context.Context, req *models.SetLogoRequest) (*models.LogoResponse, error)
	SetLogoURL(ctx context.Context, req *models.SetLogoURLRequest) (*models.LogoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
