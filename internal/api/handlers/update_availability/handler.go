package update_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	"github.com/lubooking/booking-service/internal/domain"
	availabilityService "github.com/lubooking/booking-service/internal/service/availability"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgBarberNotFound     = "barber profile not found"
	msgOverlappingWindows = "availability windows overlap"
)

// UpdateAvailabilityRequest HTTP request model.
// Пустой список окон делает дату полностью недоступной.
type UpdateAvailabilityRequest struct {
	Date    string               `json:"date"` // "2026-09-14"
	Windows []models.WindowInput `json:"windows"`
}

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

// Handle PUT /api/v1/dashboard/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var httpReq UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("PUT /dashboard/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, httpReq.Date)
	if err != nil {
		h.logger.Warn("PUT /dashboard/availability - Invalid date: %s", httpReq.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ReplaceForDate(r.Context(), &models.ReplaceForDateRequest{
		UserID:  userID,
		Date:    date,
		Windows: httpReq.Windows,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrBarberNotFound):
			h.logger.Warn("PUT /dashboard/availability - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availabilityService.ErrOverlappingWindows):
			h.logger.Warn("PUT /dashboard/availability - Overlapping windows: user_id=%s, date=%s",
				userID, httpReq.Date)
			handlers.RespondError(w, http.StatusConflict, msgOverlappingWindows)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /dashboard/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /dashboard/availability - Failed to update: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dashboard/availability - Availability updated successfully: user_id=%s, date=%s, windows=%d",
		userID, httpReq.Date, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
