package fixture

import (
	"context"
	"sort"
	"sync"

	"github.com/lubooking/booking-service/internal/domain"
	servicestorage "github.com/lubooking/booking-service/internal/infra/storage/service"
)

// ServiceStore is an in-memory service catalogue.
type ServiceStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Service
}

func newServiceStore() *ServiceStore {
	return &ServiceStore{nextID: 1, items: make(map[int64]*domain.Service)}
}

func (s *ServiceStore) seed(service *domain.Service) *domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	service.ID = s.nextID
	s.nextID++
	s.items[service.ID] = service
	return service
}

func (s *ServiceStore) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	service, ok := s.items[id]
	if !ok {
		return nil, servicestorage.ErrServiceNotFound
	}
	copied := *service
	return &copied, nil
}

func (s *ServiceStore) ListActiveByBarber(_ context.Context, barberID int64) ([]*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Service, 0)
	for _, service := range s.items {
		if service.BarberID != barberID || !service.Active {
			continue
		}
		copied := *service
		result = append(result, &copied)
	}
	// Та же сортировка, что у SQL-репозитория: по цене.
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, nil
}
