package get_gallery

import (
	"errors"
	"net/http"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	galleryService "github.com/lubooking/booking-service/internal/service/gallery"
)

const (
	msgUnauthorized   = "authentication required"
	msgBarberNotFound = "barber profile not found"
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

// Handle GET /api/v1/dashboard/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("GET /dashboard/gallery - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /dashboard/gallery - Failed to list images: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/gallery - Images listed successfully: user_id=%s, count=%d",
		userID, len(result.Images))
	handlers.RespondJSON(w, http.StatusOK, result)
}
