package get_available_slots

import (
	"sort"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
)

// generateTimeSlots разбивает окно доступности на непрерывные слоты
// фиксированной длительности и помечает занятость каждого слота.
//
// Слоты идут подряд от начала окна с шагом durationMinutes. Неполный
// хвостовой слот, не помещающийся до конца окна, отбрасывается.
//
// Слот считается занятым, если его интервал реально пересекается хотя бы
// с одним бронированием. Интервалы полуоткрытые [start, end): бронирование,
// заканчивающееся ровно в начале слота (или начинающееся ровно в его
// конце), слот не блокирует.
//
// Примеры:
// - Слот 11:30-12:15, бронирование 11:20-11:40 → слот занят
// - Слот 11:30-12:15, бронирование 11:00-11:30 → слот свободен (граничат)
// - Слот 11:30-12:15, бронирование 12:15-13:00 → слот свободен (граничат)
func generateTimeSlots(
	date time.Time,
	window *domain.AvailabilityWindow,
	durationMinutes int,
	booked []domain.Interval,
) ([]domain.Slot, error) {
	startMinutes, err := window.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	endMinutes, err := window.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]domain.Slot, 0, (endMinutes-startMinutes)/durationMinutes)
	for m := startMinutes; m+durationMinutes <= endMinutes; m += durationMinutes {
		slot := domain.Slot{
			Start: midnight.Add(time.Duration(m) * time.Minute),
			End:   midnight.Add(time.Duration(m+durationMinutes) * time.Minute),
		}
		slot.Available = !overlapsAny(domain.Interval{Start: slot.Start, End: slot.End}, booked)
		slots = append(slots, slot)
	}

	return slots, nil
}

// overlapsAny проверяет пересечение интервала хотя бы с одним из списка
func overlapsAny(interval domain.Interval, booked []domain.Interval) bool {
	for _, b := range booked {
		if interval.Overlaps(b) {
			return true
		}
	}
	return false
}

// activeIntervals собирает интервалы бронирований, блокирующих время.
// Отменённые бронирования время не блокируют.
func activeIntervals(bookings []*domain.Booking) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		intervals = append(intervals, booking.Interval())
	}
	return intervals
}

// sortSlots упорядочивает слоты по времени начала. Окна одного дня не
// пересекаются, поэтому сортировка по началу даёт стабильный порядок.
func sortSlots(slots []domain.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
}
