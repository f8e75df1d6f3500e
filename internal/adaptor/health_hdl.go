package adaptor

import (
	"context"
	"net/http"
	"time"

	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

const WelcomeMessage = "Welcome to Synergia Event Booking API"

type HealthHandler struct {
	service usecase.HealthService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Welcome handles GET /
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	utils.ResponseText(w, http.StatusOK, WelcomeMessage)
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.service.Check(ctx); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		utils.ResponseUnavailable(w, "Store unavailable", err)
		return
	}

	utils.ResponseText(w, http.StatusOK, "OK")
}
