package list_barbers

import (
	"net/http"

	"github.com/lubooking/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/barbers
//
// Маршрут регистрируется только в режиме маркетплейса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Barbers listed successfully: count=%d", len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
