package delete_gallery_image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	galleryService "github.com/lubooking/booking-service/internal/service/gallery"
	"github.com/lubooking/booking-service/internal/service/gallery/models"
)

const (
	msgUnauthorized   = "authentication required"
	msgInvalidImageID = "invalid image id"
	msgImageNotFound  = "gallery image not found"
	msgBarberNotFound = "barber profile not found"
	msgAccessDenied   = "access denied"
)

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

// Handle DELETE /api/v1/dashboard/gallery/{imageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	imageID, err := strconv.ParseInt(mux.Vars(r)["imageId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /dashboard/gallery/{id} - Invalid image ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	err = h.service.DeleteImage(r.Context(), &models.DeleteImageRequest{
		UserID:  userID,
		ImageID: imageID,
	})
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrImageNotFound):
			h.logger.Warn("DELETE /dashboard/gallery/{id} - Image not found: image_id=%d", imageID)
			handlers.RespondNotFound(w, msgImageNotFound)

		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("DELETE /dashboard/gallery/{id} - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, galleryService.ErrAccessDenied):
			h.logger.Warn("DELETE /dashboard/gallery/{id} - Access denied: user_id=%s, image_id=%d",
				userID, imageID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /dashboard/gallery/{id} - Failed to delete image: image_id=%d, error=%v",
				imageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /dashboard/gallery/{id} - Image deleted successfully: user_id=%s, image_id=%d",
		userID, imageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
