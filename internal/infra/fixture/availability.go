package fixture

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	availabilitystorage "github.com/lubooking/booking-service/internal/infra/storage/availability"
)

// AvailabilityStore is an in-memory availability window repository.
type AvailabilityStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.AvailabilityWindow
}

func newAvailabilityStore() *AvailabilityStore {
	return &AvailabilityStore{nextID: 1, items: make(map[int64]*domain.AvailabilityWindow)}
}

func (s *AvailabilityStore) seed(window *domain.AvailabilityWindow) *domain.AvailabilityWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(window)
}

// insert assumes s.mu is held.
func (s *AvailabilityStore) insert(window *domain.AvailabilityWindow) *domain.AvailabilityWindow {
	window.ID = s.nextID
	s.nextID++
	s.items[window.ID] = window
	return window
}

func (s *AvailabilityStore) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	window, ok := s.items[id]
	if !ok {
		return nil, availabilitystorage.ErrWindowNotFound
	}
	copied := *window
	return &copied, nil
}

func (s *AvailabilityStore) GetByBarberAndDate(_ context.Context, barberID int64, date time.Time) ([]*domain.AvailabilityWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.AvailabilityWindow, 0)
	for _, window := range s.items {
		if window.BarberID == barberID && sameDay(window.Date, date) {
			copied := *window
			result = append(result, &copied)
		}
	}
	sortByStartTime(result)
	return result, nil
}

func (s *AvailabilityStore) ListByBarberFromDate(_ context.Context, barberID int64, from time.Time, limit uint64) ([]*domain.AvailabilityWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.AvailabilityWindow, 0)
	for _, window := range s.items {
		if window.BarberID == barberID && !window.Date.Before(from) {
			copied := *window
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	if limit > 0 && uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *AvailabilityStore) DatesWithWindows(_ context.Context, barberID int64, from, to time.Time) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dates := make(map[string]bool)
	for _, window := range s.items {
		if window.BarberID != barberID {
			continue
		}
		if window.Date.Before(from) || window.Date.After(to) {
			continue
		}
		dates[window.Date.Format(domain.DateFormat)] = true
	}
	return dates, nil
}

func (s *AvailabilityStore) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlapsExisting(window) {
		return nil, availabilitystorage.ErrDuplicateWindow
	}
	copied := *window
	created := s.insert(&copied)
	out := *created
	return &out, nil
}

func (s *AvailabilityStore) CreateBatch(_ context.Context, windows []*domain.AvailabilityWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, window := range windows {
		if s.overlapsExisting(window) {
			return availabilitystorage.ErrDuplicateWindow
		}
	}
	for _, window := range windows {
		copied := *window
		s.insert(&copied)
	}
	return nil
}

func (s *AvailabilityStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return availabilitystorage.ErrWindowNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *AvailabilityStore) DeleteByBarberAndDate(_ context.Context, barberID int64, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, window := range s.items {
		if window.BarberID == barberID && sameDay(window.Date, date) {
			delete(s.items, id)
		}
	}
	return nil
}

// overlapsExisting assumes s.mu is held.
func (s *AvailabilityStore) overlapsExisting(window *domain.AvailabilityWindow) bool {
	for _, existing := range s.items {
		if existing.BarberID != window.BarberID || !sameDay(existing.Date, window.Date) {
			continue
		}
		if existing.Overlaps(window) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func sortByStartTime(windows []*domain.AvailabilityWindow) {
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].StartTime.IsBefore(windows[j].StartTime)
	})
}
