package add_gallery_image

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	galleryService "github.com/lubooking/booking-service/internal/service/gallery"
	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

const (
	msgUnauthorized     = "authentication required"
	msgInvalidForm      = "expected multipart form with 'image' file"
	msgInvalidBody      = "invalid request body"
	msgBarberNotFound   = "barber profile not found"
	msgUnsupportedImage = "unsupported image type, expected JPEG, PNG or WebP"

	// Максимальный размер загружаемого изображения.
	maxUploadBytes = 10 << 20
)

// AddImageByURLRequest HTTP request model для добавления по внешнему URL
type AddImageByURLRequest struct {
	ImageURL string `json:"imageUrl"`
}

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/dashboard/gallery
//
// Принимает либо multipart form с файлом 'image', либо JSON
// {"imageUrl": "..."} с уже размещенным изображением.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		h.handleByURL(w, r, userID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /dashboard/gallery - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	result, err := h.service.AddImage(r.Context(), &models.AddImageRequest{
		UserID:      userID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("POST /dashboard/gallery - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, galleryService.ErrUnsupportedImageType):
			h.logger.Warn("POST /dashboard/gallery - Unsupported image type: user_id=%s, content_type=%s",
				userID, header.Header.Get("Content-Type"))
			handlers.RespondBadRequest(w, msgUnsupportedImage)

		case errors.Is(err, galleryService.ErrInvalidInput):
			h.logger.Warn("POST /dashboard/gallery - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /dashboard/gallery - Failed to add image: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dashboard/gallery - Image added successfully: user_id=%s, image_id=%d",
		userID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// handleByURL добавляет запись галереи по внешнему URL без загрузки файла
func (h *Handler) handleByURL(w http.ResponseWriter, r *http.Request, userID string) {
	var httpReq AddImageByURLRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("POST /dashboard/gallery - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.AddImageByURL(r.Context(), &models.AddImageByURLRequest{
		UserID:   userID,
		ImageURL: httpReq.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("POST /dashboard/gallery - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, galleryService.ErrInvalidInput):
			h.logger.Warn("POST /dashboard/gallery - Invalid image URL: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /dashboard/gallery - Failed to add image by URL: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dashboard/gallery - Image added by URL successfully: user_id=%s, image_id=%d",
		userID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
