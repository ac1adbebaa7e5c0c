package list_barbers

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/barbers/models"
)

type BarberService interface {
	ListActive(ctx context.Context) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
