package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ping   func(ctx context.Context) error
	driver string
}

func NewHealthHandler(driver string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping, driver: driver}
}

// Check handles GET /health by pinging the active store.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		slog.Warn("health check failed", "store", h.driver, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "store": h.driver})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": h.driver})
}
