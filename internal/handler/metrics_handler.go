package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/service"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	db      Pinger
	logger  *zap.Logger
}

// NewMetricsHandler constructs a metrics handler. db may be nil, in which
// case readiness always succeeds.
func NewMetricsHandler(metrics *service.MetricsService, db Pinger, logger *zap.Logger) *MetricsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsHandler{metrics: metrics, db: db, logger: logger}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary Readiness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.ErrorBody
// @Router /ready [get]
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warn("readiness check failed", zap.Error(err))
			response.Error(c, appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "Database unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
