package update_availability

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	ReplaceForDate(ctx context.Context, req *models.ReplaceForDateRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
