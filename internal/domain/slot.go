package domain

import "time"

// Interval is a half-open [Start, End) time interval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that merely touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Slot represents a fixed-duration candidate appointment interval derived
// from an availability window. Slots are computed per request and never
// persisted.
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Duration returns the slot length.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
