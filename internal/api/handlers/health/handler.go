package health

import (
	"context"
	"net/http"
	"time"

	"github.com/lubooking/booking-service/internal/api/handlers"
)

// Pinger проверяет доступность хранилища. В демо-режиме передаётся nil.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type statusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	pinger Pinger
	logger Logger
}

func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Error("GET /health - Database ping failed: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
