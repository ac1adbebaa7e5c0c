package barbers

import (
	"context"
	"errors"
	"fmt"

	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	"github.com/lubooking/booking-service/internal/service/barbers/models"
)

// Service сервис публичных профилей барберов
type Service struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	galleryRepo GalleryRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	galleryRepo GalleryRepository,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		galleryRepo: galleryRepo,
		logger:      logger,
	}
}

// GetProfileBySlug собирает публичный профиль: карточка барбера, активные
// услуги (по возрастанию цены) и галерея (по displayOrder)
func (s *Service) GetProfileBySlug(ctx context.Context, slug string) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfileBySlug: slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetProfileBySlug: barber slug=%s not found", slug)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetProfileBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetProfileBySlug - repository error: %v", ErrInternal, err)
	}

	// Неактивный профиль публично не существует
	if !barber.Active {
		s.logger.Warn("GetProfileBySlug: barber slug=%s is inactive", slug)
		return nil, ErrBarberNotFound
	}

	services, err := s.serviceRepo.ListActiveByBarber(ctx, barber.ID)
	if err != nil {
		s.logger.Error("GetProfileBySlug: failed to list services for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: GetProfileBySlug - repository error: %v", ErrInternal, err)
	}

	gallery, err := s.galleryRepo.ListByBarber(ctx, barber.ID)
	if err != nil {
		s.logger.Error("GetProfileBySlug: failed to list gallery for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: GetProfileBySlug - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfileBySlug: barber=%d, %d services, %d images",
		barber.ID, len(services), len(gallery))

	return &models.ProfileResponse{
		Barber:   models.FromDomainBarber(barber),
		Services: models.FromDomainServices(services),
		Gallery:  models.FromDomainGallery(gallery),
	}, nil
}

// ListActive возвращает всех активных барберов для витрины маркетплейса
func (s *Service) ListActive(ctx context.Context) (*models.BarberListResponse, error) {
	s.logger.Info("ListActive: fetching active barbers")

	barbers, err := s.barberRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	out := make([]models.BarberResponse, len(barbers))
	for i, barber := range barbers {
		out[i] = models.FromDomainBarber(barber)
	}

	s.logger.Info("ListActive: fetched %d barbers", len(out))
	return &models.BarberListResponse{Barbers: out}, nil
}
