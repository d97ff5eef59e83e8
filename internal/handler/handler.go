package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the operational endpoints (health, metrics).
type Handler struct {
	started time.Time
}

func New() *Handler {
	return &Handler{started: time.Now()}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "alive"}))
}

// ReadinessCheck reports ready as soon as the catalog loaded, which
// happens before the router starts.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{
		"status": "ready",
		"uptime": time.Since(h.started).String(),
	}))
}

func (h *Handler) MetricsHandler(c *gin.Context) {
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}
