package models

import "github.com/lubooking/booking-service/internal/domain"

// BarberResponse краткая карточка барбера для списков
type BarberResponse struct {
	ID       int64   `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	LogoURL  *string `json:"logoUrl,omitempty"`
}

// ServiceResponse услуга в профиле барбера
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// GalleryImageResponse изображение портфолио
type GalleryImageResponse struct {
	ID           int64  `json:"id"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

// ProfileResponse публичный профиль барбера
type ProfileResponse struct {
	Barber   BarberResponse         `json:"barber"`
	Services []ServiceResponse      `json:"services"`
	Gallery  []GalleryImageResponse `json:"gallery"`
}

// BarberListResponse список барберов для маркетплейса
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// FromDomainBarber конвертирует domain.Barber в response
func FromDomainBarber(barber *domain.Barber) BarberResponse {
	return BarberResponse{
		ID:       barber.ID,
		Slug:     barber.Slug,
		Name:     barber.Name,
		Bio:      barber.Bio,
		Location: barber.Location,
		LogoURL:  barber.LogoURL,
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, service := range services {
		out[i] = ServiceResponse{
			ID:              service.ID,
			Name:            service.Name,
			Description:     service.Description,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		}
	}
	return out
}

// FromDomainGallery конвертирует список изображений
func FromDomainGallery(images []*domain.GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, len(images))
	for i, image := range images {
		out[i] = GalleryImageResponse{
			ID:           image.ID,
			ImageURL:     image.ImageURL,
			DisplayOrder: image.DisplayOrder,
		}
	}
	return out
}
