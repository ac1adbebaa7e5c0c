package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

func window(start, end string) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	day := date(2026, time.September, 14)

	slots, err := generateTimeSlots(day, window("09:00", "18:00"), 45, nil)
	require.NoError(t, err)

	// 540 минут / 45 = ровно 12 слотов, без неполного хвоста
	require.Len(t, slots, 12)

	assert.Equal(t, at(day, 9, 0), slots[0].Start)
	assert.Equal(t, at(day, 9, 45), slots[0].End)
	assert.Equal(t, at(day, 17, 15), slots[11].Start)
	assert.Equal(t, at(day, 18, 0), slots[11].End)

	for i, slot := range slots {
		assert.True(t, slot.Available, "slot %d", i)
		if i > 0 {
			assert.Equal(t, slots[i-1].End, slot.Start, "slots must be contiguous")
		}
	}
}

func TestGenerateTimeSlots_PartialTrailingSlotDiscarded(t *testing.T) {
	day := date(2026, time.September, 14)

	// 60 минут при длительности 45: второй слот не помещается
	slots, err := generateTimeSlots(day, window("09:00", "10:00"), 45, nil)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, at(day, 9, 0), slots[0].Start)
	assert.Equal(t, at(day, 9, 45), slots[0].End)
}

func TestGenerateTimeSlots_WindowShorterThanDuration(t *testing.T) {
	day := date(2026, time.September, 14)

	slots, err := generateTimeSlots(day, window("09:00", "09:30"), 45, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_BookedSlotMarkedUnavailable(t *testing.T) {
	day := date(2026, time.September, 14)
	booked := []domain.Interval{
		{Start: at(day, 9, 0), End: at(day, 9, 45)},
	}

	slots, err := generateTimeSlots(day, window("09:00", "10:00"), 45, booked)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.False(t, slots[0].Available)
}

func TestGenerateTimeSlots_HalfOpenBoundaries(t *testing.T) {
	day := date(2026, time.September, 14)

	tests := []struct {
		name      string
		booking   domain.Interval
		available []bool
	}{
		{
			name:      "booking ends exactly at slot start",
			booking:   domain.Interval{Start: at(day, 8, 0), End: at(day, 9, 0)},
			available: []bool{true, true},
		},
		{
			name:      "booking starts exactly at slot end",
			booking:   domain.Interval{Start: at(day, 10, 30), End: at(day, 11, 0)},
			available: []bool{true, true},
		},
		{
			name:      "booking overlaps first slot by one minute",
			booking:   domain.Interval{Start: at(day, 8, 0), End: at(day, 9, 1)},
			available: []bool{false, true},
		},
		{
			name:      "booking spans both slots",
			booking:   domain.Interval{Start: at(day, 9, 30), End: at(day, 10, 0)},
			available: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(day, window("09:00", "10:30"), 45, []domain.Interval{tt.booking})
			require.NoError(t, err)
			require.Len(t, slots, len(tt.available))
			for i, want := range tt.available {
				assert.Equal(t, want, slots[i].Available, "slot %d", i)
			}
		})
	}
}

func TestGenerateTimeSlots_Idempotent(t *testing.T) {
	day := date(2026, time.September, 14)
	booked := []domain.Interval{
		{Start: at(day, 12, 0), End: at(day, 12, 45)},
	}
	w := window("09:00", "18:00")

	first, err := generateTimeSlots(day, w, 45, booked)
	require.NoError(t, err)
	second, err := generateTimeSlots(day, w, 45, booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_SecondsTruncatedInWindowBounds(t *testing.T) {
	day := date(2026, time.September, 14)

	// TIME-колонки приходят с секундами; Scan обрезает их до минут
	var start, end types.TimeString
	require.NoError(t, start.Scan("09:00:30"))
	require.NoError(t, end.Scan("10:30:59"))

	slots, err := generateTimeSlots(day, &domain.AvailabilityWindow{StartTime: start, EndTime: end}, 45, nil)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, at(day, 9, 0), slots[0].Start)
	assert.Equal(t, at(day, 9, 45), slots[1].Start)
}

func TestSortSlots_TwoWindowsMerged(t *testing.T) {
	day := date(2026, time.September, 14)

	morning, err := generateTimeSlots(day, window("09:00", "12:00"), 60, nil)
	require.NoError(t, err)
	evening, err := generateTimeSlots(day, window("14:00", "17:00"), 60, nil)
	require.NoError(t, err)

	// Объединяем в обратном порядке и проверяем сортировку
	slots := append(append([]domain.Slot{}, evening...), morning...)
	sortSlots(slots)

	require.Len(t, slots, 6)
	assert.Equal(t, at(day, 9, 0), slots[0].Start)
	assert.Equal(t, at(day, 11, 0), slots[2].Start)
	// Между окнами нет слотов: перерыв 12:00-14:00 не генерируется
	assert.Equal(t, at(day, 14, 0), slots[3].Start)
	assert.Equal(t, at(day, 16, 0), slots[5].Start)
}
