package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis *redis.Client
	model string
}

// NewHealthHandler creates a new health handler. redis may be nil when
// the prediction cache is disabled.
func NewHealthHandler(redis *redis.Client, model string) *HealthHandler {
	return &HealthHandler{
		redis: redis,
		model: model,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Model      string            `json:"model"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := map[string]string{
		// The backend is loaded before the server starts
		"backend": "ok",
	}
	healthy := true

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Model:      h.model,
		Components: components,
	})
}

// Ready handles GET /ready. The cache is optional, so only the backend
// decides readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.model == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "backend not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "model": h.model})
}
