package create_booking

import (
	"time"

	"github.com/lubooking/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BarberID  int64            // ID барбера
	ServiceID int64            // ID услуги (определяет длительность)
	Date      time.Time        // Дата бронирования (без времени, UTC)
	StartTime types.TimeString // Время начала слота (например, "10:00")

	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email для подтверждения
	CustomerPhone string  // Телефон (опционально)
	Notes         *string // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	BarberID  int64     // ID барбера
	ServiceID int64     // ID услуги
	StartsAt  time.Time // Начало слота (instant, UTC)
	EndsAt    time.Time // Конец слота (instant, UTC)
	Status    string    // Статус бронирования

	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone string  // Телефон клиента
	Notes         *string // Пожелания

	// CancellationToken показывается клиенту один раз при создании
	CancellationToken string

	ServiceName     string  // Название услуги
	ServicePrice    float64 // Цена услуги
	DurationMinutes int     // Длительность в минутах

	CreatedAt time.Time // Время создания
}
