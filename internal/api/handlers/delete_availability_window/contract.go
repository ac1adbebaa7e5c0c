package delete_availability_window

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	DeleteWindow(ctx context.Context, req *models.DeleteWindowRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
