package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"aurum-pay.backend/internal/interfaces/http/response"
)

// HealthHandler serves liveness checks
type HealthHandler struct {
	version   string
	startedAt time.Time
	pingDB    func(ctx context.Context) error
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, startedAt: time.Now()}
}

// WithDBPing attaches a database connectivity ping for the detailed check.
func (h *HealthHandler) WithDBPing(ping func(ctx context.Context) error) *HealthHandler {
	h.pingDB = ping
	return h
}

// Health reports service liveness
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	response.RouteOK(c, gin.H{
		"service":   "aurum-pay-backend",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthDetailed reports liveness plus database connectivity
// GET /api/health/detailed
func (h *HealthHandler) HealthDetailed(c *gin.Context) {
	dbStatus := "not configured"
	if h.pingDB != nil {
		if err := h.pingDB(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "database unreachable",
			})
			return
		}
		dbStatus = "connected"
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":        "healthy",
		"version":       h.version,
		"environment":   os.Getenv("SERVER_ENV"),
		"uptimeSeconds": int(time.Since(h.startedAt).Seconds()),
		"database":      gin.H{"status": dbStatus},
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}
