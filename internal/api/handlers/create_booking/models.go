package create_booking

import (
	"time"

	createBooking "github.com/lubooking/booking-service/internal/usecase/create_booking"
	"github.com/lubooking/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID      int64   `json:"barberId"`
	ServiceID     int64   `json:"serviceId"`
	StartsAt      string  `json:"startsAt"` // RFC3339
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
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

	CancellationToken string `json:"cancellationToken"`

	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// startsAt раскладывается на дату и время начала; секунды отбрасываются.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}
	startsAt = startsAt.UTC()

	date := time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC)

	return &createBooking.Request{
		BarberID:      r.BarberID,
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     types.NewTimeString(startsAt),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		BarberID:          resp.BarberID,
		ServiceID:         resp.ServiceID,
		StartsAt:          resp.StartsAt,
		EndsAt:            resp.EndsAt,
		Status:            resp.Status,
		CustomerName:      resp.CustomerName,
		CustomerEmail:     resp.CustomerEmail,
		CustomerPhone:     resp.CustomerPhone,
		Notes:             resp.Notes,
		CancellationToken: resp.CancellationToken,
		ServiceName:       resp.ServiceName,
		ServicePrice:      resp.ServicePrice,
		DurationMinutes:   resp.DurationMinutes,
		CreatedAt:         resp.CreatedAt,
	}
}
