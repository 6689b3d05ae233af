package handler

import (
	"context"
	"net/http"
	"time"

	"supportcenter/internal/logger"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
	log  logger.Recorder
}

func NewHealthHandler(ping Pinger, log logger.Recorder) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Health probes the database
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Record("Health check failed: "+err.Error(), logger.SeverityError)
		c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"status": "ok"}))
}
