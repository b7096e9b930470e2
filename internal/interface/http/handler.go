package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/events"
	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/profile"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	plannerSvc planner.Service
	eventsSvc  events.Service
	profileSvc profile.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(plannerSvc planner.Service, eventsSvc events.Service, profileSvc profile.Service, logger *slog.Logger) *Handler {
	return &Handler{
		plannerSvc: plannerSvc,
		eventsSvc:  eventsSvc,
		profileSvc: profileSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
