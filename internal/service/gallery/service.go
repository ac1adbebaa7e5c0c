package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	galleryRepo "github.com/lubooking/booking-service/internal/infra/storage/gallery"
	"github.com/lubooking/booking-service/internal/service/gallery/models"
	"github.com/lubooking/booking-service/pkg/ptr"
)

// allowedImageTypes типы изображений, принимаемые в галерею и логотип
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Service сервис галереи и логотипа барбера
type Service struct {
	galleryRepo GalleryRepository
	barberRepo  BarberRepository
	blobStore   BlobStore
	logger      Logger

	// now подменяется в тестах для детерминированных ключей
	now func() time.Time
}

// NewService создает новый экземпляр сервиса галереи
func NewService(
	galleryRepo GalleryRepository,
	barberRepo BarberRepository,
	blobStore BlobStore,
	logger Logger,
) *Service {
	return &Service{
		galleryRepo: galleryRepo,
		barberRepo:  barberRepo,
		blobStore:   blobStore,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List возвращает галерею барбера пользователя
func (s *Service) List(ctx context.Context, userID string) (*models.ImageListResponse, error) {
	s.logger.Info("ListGallery: user=%s", userID)

	barber, err := s.ownBarber(ctx, userID)
	if err != nil {
		return nil, err
	}

	images, err := s.galleryRepo.ListByBarber(ctx, barber.ID)
	if err != nil {
		s.logger.Error("ListGallery: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainImageList(images), nil
}

// AddImage загружает изображение в blob store и добавляет запись в галерею.
// Изображение встаёт в конец галереи (наибольший displayOrder).
func (s *Service) AddImage(ctx context.Context, req *models.AddImageRequest) (*models.ImageResponse, error) {
	s.logger.Info("AddImage: user=%s, file=%s, type=%s", req.UserID, req.FileName, req.ContentType)

	if req.Body == nil {
		return nil, fmt.Errorf("%w: image body is required", ErrInvalidInput)
	}
	if !allowedImageTypes[req.ContentType] {
		s.logger.Warn("AddImage: unsupported content type %s", req.ContentType)
		return nil, ErrUnsupportedImageType
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	url, err := s.blobStore.Upload(ctx, s.objectKey(barber.ID, req.FileName), req.ContentType, req.Body)
	if err != nil {
		s.logger.Error("AddImage: upload failed for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: AddImage - upload error: %v", ErrInternal, err)
	}

	image, err := s.galleryRepo.Create(ctx, &domain.GalleryImage{
		BarberID: barber.ID,
		ImageURL: url,
	})
	if err != nil {
		// Запись не создана, убираем осиротевший объект
		_ = s.blobStore.Delete(ctx, keyFromURL(url))
		s.logger.Error("AddImage: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: AddImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddImage: added image id=%d for barber=%d", image.ID, barber.ID)
	return models.FromDomainImage(image), nil
}

// AddImageByURL добавляет в галерею запись с внешним URL.
// Blob store не участвует: изображение уже размещено где-то снаружи.
func (s *Service) AddImageByURL(ctx context.Context, req *models.AddImageByURLRequest) (*models.ImageResponse, error) {
	s.logger.Info("AddImageByURL: user=%s, url=%s", req.UserID, req.ImageURL)

	if err := validateImageURL(req.ImageURL); err != nil {
		s.logger.Warn("AddImageByURL: %v", err)
		return nil, err
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	image, err := s.galleryRepo.Create(ctx, &domain.GalleryImage{
		BarberID: barber.ID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		s.logger.Error("AddImageByURL: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: AddImageByURL - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddImageByURL: added image id=%d for barber=%d", image.ID, barber.ID)
	return models.FromDomainImage(image), nil
}

// DeleteImage удаляет изображение из галереи и из blob store
func (s *Service) DeleteImage(ctx context.Context, req *models.DeleteImageRequest) error {
	s.logger.Info("DeleteImage: user=%s, image=%d", req.UserID, req.ImageID)

	if req.ImageID <= 0 {
		return fmt.Errorf("%w: imageId must be positive", ErrInvalidInput)
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return err
	}

	image, err := s.galleryRepo.GetByID(ctx, req.ImageID)
	if err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			s.logger.Warn("DeleteImage: image id=%d not found", req.ImageID)
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: repository error for image id=%d: %v", req.ImageID, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	if image.BarberID != barber.ID {
		s.logger.Warn("DeleteImage: image id=%d belongs to barber=%d, not barber=%d",
			req.ImageID, image.BarberID, barber.ID)
		return ErrAccessDenied
	}

	if err := s.galleryRepo.Delete(ctx, req.ImageID); err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: failed to delete image id=%d: %v", req.ImageID, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	// Объект в хранилище чистим best-effort: запись уже удалена
	_ = s.blobStore.Delete(ctx, keyFromURL(image.ImageURL))

	s.logger.Info("DeleteImage: deleted image id=%d", req.ImageID)
	return nil
}

// SetLogo загружает логотип и сохраняет его URL в профиле барбера
func (s *Service) SetLogo(ctx context.Context, req *models.SetLogoRequest) (*models.LogoResponse, error) {
	s.logger.Info("SetLogo: user=%s, file=%s, type=%s", req.UserID, req.FileName, req.ContentType)

	if req.Body == nil {
		return nil, fmt.Errorf("%w: image body is required", ErrInvalidInput)
	}
	if !allowedImageTypes[req.ContentType] {
		s.logger.Warn("SetLogo: unsupported content type %s", req.ContentType)
		return nil, ErrUnsupportedImageType
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	url, err := s.blobStore.Upload(ctx, s.objectKey(barber.ID, req.FileName), req.ContentType, req.Body)
	if err != nil {
		s.logger.Error("SetLogo: upload failed for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: SetLogo - upload error: %v", ErrInternal, err)
	}

	if err := s.barberRepo.UpdateLogo(ctx, barber.ID, ptr.Ptr(url)); err != nil {
		_ = s.blobStore.Delete(ctx, keyFromURL(url))
		s.logger.Error("SetLogo: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: SetLogo - repository error: %v", ErrInternal, err)
	}

	// Старый логотип остаётся в хранилище: на него могут ссылаться кэши
	s.logger.Info("SetLogo: updated logo for barber=%d", barber.ID)
	return &models.LogoResponse{LogoURL: url}, nil
}

// SetLogoURL сохраняет в профиле URL уже размещенного изображения
// (обычно из галереи), без загрузки нового файла
func (s *Service) SetLogoURL(ctx context.Context, req *models.SetLogoURLRequest) (*models.LogoResponse, error) {
	s.logger.Info("SetLogoURL: user=%s, url=%s", req.UserID, req.LogoURL)

	if err := validateImageURL(req.LogoURL); err != nil {
		s.logger.Warn("SetLogoURL: %v", err)
		return nil, err
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.barberRepo.UpdateLogo(ctx, barber.ID, ptr.Ptr(req.LogoURL)); err != nil {
		s.logger.Error("SetLogoURL: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: SetLogoURL - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetLogoURL: updated logo for barber=%d", barber.ID)
	return &models.LogoResponse{LogoURL: req.LogoURL}, nil
}

// RemoveLogo очищает логотип профиля
func (s *Service) RemoveLogo(ctx context.Context, userID string) error {
	s.logger.Info("RemoveLogo: user=%s", userID)

	barber, err := s.ownBarber(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.barberRepo.UpdateLogo(ctx, barber.ID, nil); err != nil {
		s.logger.Error("RemoveLogo: repository error for barber=%d: %v", barber.ID, err)
		return fmt.Errorf("%w: RemoveLogo - repository error: %v", ErrInternal, err)
	}

	if barber.LogoURL != nil {
		_ = s.blobStore.Delete(ctx, keyFromURL(*barber.LogoURL))
	}

	s.logger.Info("RemoveLogo: cleared logo for barber=%d", barber.ID)
	return nil
}

// ownBarber находит профиль барбера по userID из токена аутентификации
func (s *Service) ownBarber(ctx context.Context, userID string) (*domain.Barber, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("ownBarber: no barber profile for user=%s", userID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("ownBarber: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	return barber, nil
}

// objectKey формирует ключ объекта: {barberID}/{unixnano}{ext}
func (s *Service) objectKey(barberID int64, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%d/%d%s", barberID, s.now().UnixNano(), ext)
}

// validateImageURL принимает только абсолютные http(s) URL
func validateImageURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: imageUrl is required", ErrInvalidInput)
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: imageUrl must be an absolute http(s) url", ErrInvalidInput)
	}
	return nil
}

// keyFromURL восстанавливает ключ объекта из публичного URL.
// URL имеет вид {publicBaseURL}/{barberID}/{file}; ключ - последние два
// сегмента пути.
func keyFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return url
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
