package delete_logo

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

// Handle DELETE /api/v1/dashboard/logo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.RemoveLogo(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, galleryService.ErrBarberNotFound):
			h.logger.Warn("DELETE /dashboard/logo - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("DELETE /dashboard/logo - Failed to remove logo: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /dashboard/logo - Logo removed successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
