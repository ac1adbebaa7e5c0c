package generate_weekly_schedule

import (
	"context"

	"github.com/lubooking/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	GenerateWeekly(ctx context.Context, req *models.GenerateWeeklyRequest) (*models.GenerateWeeklyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
