package delete_availability_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lubooking/booking-service/internal/api/handlers"
	"github.com/lubooking/booking-service/internal/api/middleware"
	availabilityService "github.com/lubooking/booking-service/internal/service/availability"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

const (
	msgUnauthorized    = "authentication required"
	msgInvalidWindowID = "invalid window id"
	msgWindowNotFound  = "availability window not found"
	msgBarberNotFound  = "barber profile not found"
	msgAccessDenied    = "access denied"
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

// Handle DELETE /api/v1/dashboard/availability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	windowID, err := strconv.ParseInt(mux.Vars(r)["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /dashboard/availability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	err = h.service.DeleteWindow(r.Context(), &models.DeleteWindowRequest{
		UserID:   userID,
		WindowID: windowID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrWindowNotFound):
			h.logger.Warn("DELETE /dashboard/availability/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, availabilityService.ErrBarberNotFound):
			h.logger.Warn("DELETE /dashboard/availability/{id} - Barber profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("DELETE /dashboard/availability/{id} - Access denied: user_id=%s, window_id=%d",
				userID, windowID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("DELETE /dashboard/availability/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /dashboard/availability/{id} - Failed to delete: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /dashboard/availability/{id} - Window deleted successfully: user_id=%s, window_id=%d",
		userID, windowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
