package availability

import (
	"context"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.AvailabilityWindow, error)
	ListByBarberFromDate(ctx context.Context, barberID int64, from time.Time, limit uint64) ([]*domain.AvailabilityWindow, error)
	DatesWithWindows(ctx context.Context, barberID int64, from, to time.Time) (map[string]bool, error)
	CreateBatch(ctx context.Context, windows []*domain.AvailabilityWindow) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByBarberAndDate(ctx context.Context, barberID int64, date time.Time) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Barber, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
