package models

import (
	"errors"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования клиентом
type CancelBookingRequest struct {
	BookingID         int64  `json:"bookingId"`
	CancellationToken string `json:"cancellationToken"`
}

// GetBarberBookingsRequest запрос на получение бронирований барбера
type GetBarberBookingsRequest struct {
	UserID          string     `json:"userId"`
	StartsFrom      *time.Time `json:"startsFrom,omitempty"`      // Начало периода (опционально)
	StartsTo        *time.Time `json:"startsTo,omitempty"`        // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberBookingsRequest) ToDomainFilter(barberID int64) (domain.BarberBookingsFilter, error) {
	filter := domain.BarberBookingsFilter{
		BarberID:        barberID,
		StartsFrom:      r.StartsFrom,
		StartsTo:        r.StartsTo,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64     `json:"id"`
	BarberID  int64     `json:"barberId"`
	ServiceID int64     `json:"serviceId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в response.
// Токен отмены в ответ не попадает: он показывается только при создании.
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID,
		BarberID:      booking.BarberID,
		ServiceID:     booking.ServiceID,
		StartsAt:      booking.StartsAt,
		EndsAt:        booking.EndsAt,
		Status:        string(booking.Status),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		Notes:         booking.Notes,
		CancelledAt:   booking.CancelledAt,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = *FromDomainBooking(booking)
	}
	return &BookingListResponse{Bookings: out}
}
