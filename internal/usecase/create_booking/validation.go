package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что слот начинается не раньше текущего момента
func validateNotInPast(startsAt, now time.Time) error {
	if startsAt.Before(now) {
		return fmt.Errorf("%w: slot starts in the past", ErrInvalidDate)
	}
	return nil
}

// windowCovers проверяет, что слот целиком помещается в одно из окон.
// Слот, выходящий за конец окна, бронировать нельзя, даже если его начало
// внутри окна.
func windowCovers(windows []*domain.AvailabilityWindow, date, startsAt, endsAt time.Time) (bool, error) {
	for _, window := range windows {
		windowStart, err := window.StartTime.OnDate(date)
		if err != nil {
			return false, err
		}
		windowEnd, err := window.EndTime.OnDate(date)
		if err != nil {
			return false, err
		}
		if !startsAt.Before(windowStart) && !endsAt.After(windowEnd) {
			return true, nil
		}
	}
	return false, nil
}
