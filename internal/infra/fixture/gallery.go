package fixture

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	gallerystorage "github.com/lubooking/booking-service/internal/infra/storage/gallery"
)

// GalleryStore is an in-memory gallery image repository.
type GalleryStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.GalleryImage
}

func newGalleryStore() *GalleryStore {
	return &GalleryStore{nextID: 1, items: make(map[int64]*domain.GalleryImage)}
}

func (s *GalleryStore) seed(image *domain.GalleryImage) *domain.GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	image.ID = s.nextID
	s.nextID++
	s.items[image.ID] = image
	return image
}

func (s *GalleryStore) GetByID(_ context.Context, id int64) (*domain.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	image, ok := s.items[id]
	if !ok {
		return nil, gallerystorage.ErrImageNotFound
	}
	copied := *image
	return &copied, nil
}

func (s *GalleryStore) ListByBarber(_ context.Context, barberID int64) ([]*domain.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.GalleryImage, 0)
	for _, image := range s.items {
		if image.BarberID == barberID {
			copied := *image
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DisplayOrder < result[j].DisplayOrder })
	return result, nil
}

func (s *GalleryStore) Create(_ context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxOrder := 0
	for _, existing := range s.items {
		if existing.BarberID == image.BarberID && existing.DisplayOrder > maxOrder {
			maxOrder = existing.DisplayOrder
		}
	}

	copied := *image
	copied.ID = s.nextID
	s.nextID++
	copied.DisplayOrder = maxOrder + 1
	copied.CreatedAt = time.Now().UTC()
	s.items[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (s *GalleryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return gallerystorage.ErrImageNotFound
	}
	delete(s.items, id)
	return nil
}
