package set_logo

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
	msgInvalidForm      = "expected multipart form with 'logo' file"
	msgInvalidBody      = "invalid request body"
	msgBarberNotFound   = "barber profile not found"
	msgUnsupportedImage = "unsupported image type, expected JPEG, PNG or WebP"

	maxUploadBytes = 10 << 20
)

// SetLogoURLRequest HTTP request model для установки логотипа по URL
type SetLogoURLRequest struct {
	LogoURL string `json:"logoUrl"`
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

// Handle PUT /api/v1/dashboard/logo
//
// Принимает либо multipart form с файлом 'logo', либо JSON
// {"logoUrl": "..."} с URL уже загруженного изображения (например,
// из галереи).
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

	file, header, err := r.FormFile("logo")
	if err != nil {
		h.logger.Warn("PUT /dashboard/logo - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	result, err := h.service.SetLogo(r.Context(), &models.SetLogoRequest{
		UserID:      userID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("PUT /dashboard/logo - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, galleryService.ErrUnsupportedImageType):
			h.logger.Warn("PUT /dashboard/logo - Unsupported image type: user_id=%s, content_type=%s",
				userID, header.Header.Get("Content-Type"))
			handlers.RespondBadRequest(w, msgUnsupportedImage)

		case errors.Is(err, galleryService.ErrInvalidInput):
			h.logger.Warn("PUT /dashboard/logo - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /dashboard/logo - Failed to set logo: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dashboard/logo - Logo set successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// handleByURL сохраняет в профиле URL уже размещенного изображения
func (h *Handler) handleByURL(w http.ResponseWriter, r *http.Request, userID string) {
	var httpReq SetLogoURLRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("PUT /dashboard/logo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.SetLogoURL(r.Context(), &models.SetLogoURLRequest{
		UserID:  userID,
		LogoURL: httpReq.LogoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("PUT /dashboard/logo - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, galleryService.ErrInvalidInput):
			h.logger.Warn("PUT /dashboard/logo - Invalid logo URL: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /dashboard/logo - Failed to set logo by URL: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dashboard/logo - Logo set by URL successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
