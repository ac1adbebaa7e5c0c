package get_barber

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/barbers/models"
)

type BarberService interface {
	GetProfileBySlug(ctx context.Context, slug string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
