package domain

import (
	"errors"
	"time"

	"github.com/lubooking/booking-service/pkg/types"
)

var (
	// ErrInvalidWindow возвращается, когда начало окна не раньше конца
	ErrInvalidWindow = errors.New("availability window start must be before end")
)

// AvailabilityWindow represents a barber-declared open interval on a
// specific calendar day. A barber may have several non-overlapping windows
// per day.
type AvailabilityWindow struct {
	ID        int64
	BarberID  int64
	Date      time.Time        // calendar day, midnight UTC
	StartTime types.TimeString // "HH:MM"
	EndTime   types.TimeString // "HH:MM"

	CreatedAt time.Time
}

// Validate checks the startTime < endTime invariant.
func (w *AvailabilityWindow) Validate() error {
	if err := w.StartTime.Validate(); err != nil {
		return err
	}
	if err := w.EndTime.Validate(); err != nil {
		return err
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return ErrInvalidWindow
	}
	return nil
}

// Overlaps reports whether two windows on the same day intersect under
// half-open semantics. Windows that merely touch do not overlap.
func (w *AvailabilityWindow) Overlaps(other *AvailabilityWindow) bool {
	return w.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(w.EndTime)
}
