package generate_weekly_schedule

import (
	"errors"
	"net/http"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	availabilityService "github.com/lubooking/booking-service/internal/service/availability"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgBarberNotFound     = "barber profile not found"
)

// GenerateWeeklyRequest HTTP request model
type GenerateWeeklyRequest struct {
	Template    map[string][]models.WindowInput `json:"template"`
	HorizonDays int                             `json:"horizonDays"`
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

// Handle POST /api/v1/dashboard/availability/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var httpReq GenerateWeeklyRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("POST /dashboard/availability/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GenerateWeekly(r.Context(), &models.GenerateWeeklyRequest{
		UserID:      userID,
		Template:    httpReq.Template,
		HorizonDays: httpReq.HorizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrBarberNotFound):
			h.logger.Warn("POST /dashboard/availability/weekly - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /dashboard/availability/weekly - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /dashboard/availability/weekly - Failed to generate: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dashboard/availability/weekly - Schedule generated successfully: user_id=%s, created=%d, skipped=%d",
		userID, result.CreatedWindows, result.SkippedDates)
	handlers.RespondJSON(w, http.StatusOK, result)
}
