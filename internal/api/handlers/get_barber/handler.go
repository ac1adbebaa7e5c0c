package get_barber

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lubooking/booking-service/internal/api/handlers"
	barbersService "github.com/lubooking/booking-service/internal/service/barbers"
)

const (
	msgBarberNotFound = "barber not found"
	msgSlugRequired   = "barber slug is required"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgSlugRequired)
		return
	}

	profile, err := h.service.GetProfileBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, barbersService.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{slug} - Barber not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, barbersService.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /barbers/{slug} - Failed to get profile: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{slug} - Profile retrieved successfully: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
