package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reserved time interval for a barber
type Booking struct {
	ID        int64
	BarberID  int64
	ServiceID int64
	StartsAt  time.Time // instant, UTC
	EndsAt    time.Time // instant, UTC
	Status    BookingStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	// CancellationToken выдаётся клиенту при создании и предъявляется
	// при отмене без аутентификации.
	CancellationToken string
	CancelledAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still blocks its time interval.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking status permits cancellation.
// The lead-time rule is checked separately via CanCancel.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Interval returns the booked time interval.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartsAt, End: b.EndsAt}
}

// CanCancel reports whether a booking starting at startsAt may still be
// cancelled at the given moment: at least CancelNoticeHours whole hours of
// lead time must remain. Partial hours are truncated toward zero.
func CanCancel(startsAt, now time.Time) bool {
	wholeHours := int(startsAt.Sub(now).Hours())
	return wholeHours >= CancelNoticeHours
}

// BarberBookingsFilter фильтр для выборки бронирований барбера
type BarberBookingsFilter struct {
	BarberID        int64
	StartsFrom      *time.Time     // Начало периода по starts_at (опционально)
	StartsTo        *time.Time     // Конец периода по starts_at (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
