package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		want     bool
	}{
		{name: "exactly 24h ahead", startsAt: now.Add(24 * time.Hour), want: true},
		{name: "well ahead", startsAt: now.Add(72 * time.Hour), want: true},
		{name: "just under 24h", startsAt: now.Add(24*time.Hour - time.Minute), want: false},
		{name: "23h59m truncates to 23 whole hours", startsAt: now.Add(23*time.Hour + 59*time.Minute), want: false},
		{name: "24h30m truncates to 24 whole hours", startsAt: now.Add(24*time.Hour + 30*time.Minute), want: true},
		{name: "one hour ahead", startsAt: now.Add(time.Hour), want: false},
		{name: "already started", startsAt: now.Add(-time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancel(tt.startsAt, now))
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	slot := Interval{Start: at(11, 30), End: at(12, 0)}

	// Реальное пересечение
	assert.True(t, slot.Overlaps(Interval{Start: at(11, 20), End: at(11, 40)}))
	assert.True(t, slot.Overlaps(Interval{Start: at(11, 0), End: at(13, 0)}))
	assert.True(t, slot.Overlaps(Interval{Start: at(11, 30), End: at(12, 0)}))

	// Граничащие интервалы не пересекаются
	assert.False(t, slot.Overlaps(Interval{Start: at(11, 0), End: at(11, 30)}))
	assert.False(t, slot.Overlaps(Interval{Start: at(12, 0), End: at(12, 30)}))
	assert.False(t, slot.Overlaps(Interval{Start: at(9, 0), End: at(10, 0)}))
}

func TestBooking_IsActive(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.True(t, b.IsCancelled())
}
