package fixture

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	bookingstorage "github.com/lubooking/booking-service/internal/infra/storage/booking"
)

// BookingStore is an in-memory booking repository. Overlap protection that
// production delegates to the database exclusion constraint is enforced
// under the store mutex here.
type BookingStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.Booking
}

func newBookingStore() *BookingStore {
	return &BookingStore{nextID: 1, items: make(map[int64]*domain.Booking)}
}

func (s *BookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	interval := booking.Interval()
	for _, existing := range s.items {
		if existing.BarberID != booking.BarberID || existing.IsCancelled() {
			continue
		}
		if existing.Interval().Overlaps(interval) {
			return nil, bookingstorage.ErrSlotNotAvailable
		}
	}

	copied := *booking
	copied.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	copied.CreatedAt = now
	copied.UpdatedAt = now
	s.items[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (s *BookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.items[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (s *BookingStore) GetByBarberWithFilter(_ context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Booking, 0)
	for _, booking := range s.items {
		if booking.BarberID != filter.BarberID {
			continue
		}
		if filter.StartsFrom != nil && booking.StartsAt.Before(*filter.StartsFrom) {
			continue
		}
		if filter.StartsTo != nil && booking.StartsAt.After(*filter.StartsTo) {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && booking.IsCancelled() {
			continue
		}
		copied := *booking
		result = append(result, &copied)
	}
	sortByStartsAt(result)
	return result, nil
}

func (s *BookingStore) Cancel(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.items[id]
	if !ok || booking.Status != domain.StatusConfirmed {
		return bookingstorage.ErrBookingNotFound
	}
	now := time.Now().UTC()
	booking.Status = domain.StatusCancelled
	booking.CancelledAt = &now
	booking.UpdatedAt = now
	return nil
}

func sortByStartsAt(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartsAt.Before(bookings[j].StartsAt)
	})
}
