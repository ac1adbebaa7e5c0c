package fixture

import (
	"context"
	"sync"

	"github.com/lubooking/booking-service/internal/domain"
	barberstorage "github.com/lubooking/booking-service/internal/infra/storage/barber"
)

// BarberStore is an in-memory barber repository.
type BarberStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Barber
}

func newBarberStore() *BarberStore {
	return &BarberStore{nextID: 1, items: make(map[int64]*domain.Barber)}
}

func (s *BarberStore) seed(barber *domain.Barber) *domain.Barber {
	s.mu.Lock()
	defer s.mu.Unlock()
	barber.ID = s.nextID
	s.nextID++
	s.items[barber.ID] = barber
	return barber
}

func (s *BarberStore) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	barber, ok := s.items[id]
	if !ok {
		return nil, barberstorage.ErrBarberNotFound
	}
	copied := *barber
	return &copied, nil
}

func (s *BarberStore) GetBySlug(_ context.Context, slug string) (*domain.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, barber := range s.items {
		if barber.Slug == slug {
			copied := *barber
			return &copied, nil
		}
	}
	return nil, barberstorage.ErrBarberNotFound
}

func (s *BarberStore) GetByUserID(_ context.Context, userID string) (*domain.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, barber := range s.items {
		if barber.UserID == userID {
			copied := *barber
			return &copied, nil
		}
	}
	return nil, barberstorage.ErrBarberNotFound
}

func (s *BarberStore) ListActive(_ context.Context) ([]*domain.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Barber, 0, len(s.items))
	for _, barber := range s.items {
		if !barber.Active {
			continue
		}
		copied := *barber
		result = append(result, &copied)
	}
	sortByID(result, func(b *domain.Barber) int64 { return b.ID })
	return result, nil
}

func (s *BarberStore) UpdateLogo(_ context.Context, barberID int64, logoURL *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	barber, ok := s.items[barberID]
	if !ok {
		return barberstorage.ErrBarberNotFound
	}
	barber.LogoURL = logoURL
	return nil
}
