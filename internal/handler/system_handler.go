package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/service"
	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
	"github.com/exemplo/crudmongo-api/pkg/response"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler exposes liveness, readiness and Prometheus endpoints.
type SystemHandler struct {
	store   pinger
	metrics *service.MetricsService
	logger  *zap.Logger
}

// NewSystemHandler constructs a system handler.
func NewSystemHandler(store pinger, metrics *service.MetricsService, logger *zap.Logger) *SystemHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemHandler{store: store, metrics: metrics, logger: logger}
}

// Health responds OK while the process is up.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the document store answers.
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("readiness check failed", zap.Error(err))
			response.Error(c, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "document store unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
