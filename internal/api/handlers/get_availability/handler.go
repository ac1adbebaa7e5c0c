package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	availabilityService "github.com/lubooking/booking-service/internal/service/availability"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

const (
	msgUnauthorized   = "authentication required"
	msgInvalidLimit   = "invalid 'limit' value"
	msgBarberNotFound = "barber profile not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/availability
// Query params: limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /dashboard/availability - Invalid limit: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListUpcoming(r.Context(), &models.ListUpcomingRequest{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrBarberNotFound):
			h.logger.Warn("GET /dashboard/availability - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /dashboard/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /dashboard/availability - Failed to list windows: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/availability - Windows listed successfully: user_id=%s, count=%d",
		userID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
