package models

import (
	"io"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
)

// Request модели

// AddImageRequest запрос на добавление изображения в галерею
type AddImageRequest struct {
	UserID      string    // идентификатор пользователя из токена
	FileName    string    // имя загружаемого файла, определяет расширение
	ContentType string    // MIME-тип изображения
	Body        io.Reader // содержимое файла
}

// AddImageByURLRequest запрос на добавление изображения по внешнему URL.
// Файл в blob store не загружается, URL сохраняется как есть.
type AddImageByURLRequest struct {
	UserID   string `json:"userId"`
	ImageURL string `json:"imageUrl"`
}

// DeleteImageRequest запрос на удаление изображения
type DeleteImageRequest struct {
	UserID  string
	ImageID int64
}

// SetLogoRequest запрос на установку логотипа профиля
type SetLogoRequest struct {
	UserID      string
	FileName    string
	ContentType string
	Body        io.Reader
}

// SetLogoURLRequest запрос на установку логотипа по URL уже загруженного
// изображения (например, из галереи)
type SetLogoURLRequest struct {
	UserID  string `json:"userId"`
	LogoURL string `json:"logoUrl"`
}

// Response модели

// ImageResponse изображение галереи в ответе
type ImageResponse struct {
	ID           int64     `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ImageListResponse ответ со списком изображений
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

// LogoResponse ответ с URL установленного логотипа
type LogoResponse struct {
	LogoURL string `json:"logoUrl"`
}

// FromDomainImage конвертирует domain.GalleryImage в response
func FromDomainImage(image *domain.GalleryImage) *ImageResponse {
	return &ImageResponse{
		ID:           image.ID,
		ImageURL:     image.ImageURL,
		DisplayOrder: image.DisplayOrder,
		CreatedAt:    image.CreatedAt,
	}
}

// FromDomainImageList конвертирует список изображений
func FromDomainImageList(images []*domain.GalleryImage) *ImageListResponse {
	out := make([]ImageResponse, len(images))
	for i, image := range images {
		out[i] = *FromDomainImage(image)
	}
	return &ImageListResponse{Images: out}
}
