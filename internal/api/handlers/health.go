package handlers

import (
	"context"
	"net/http"
	"time"

	"skills-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// Version is reported by the health endpoint; set with -ldflags at build time
var Version = "dev"

// HealthHandler serves the probes used by the orchestrator
type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

// NewHealthHandler creates a health handler that pings db
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string            `json:"status" example:"healthy"`
	Timestamp     time.Time         `json:"timestamp"`
	Version       string            `json:"version" example:"dev"`
	UptimeSeconds int64             `json:"uptime_seconds" example:"3600"`
	Services      map[string]string `json:"services"`
}

// ReadyResponse is the body of GET /health/ready
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health reports overall status including database connectivity
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	err := h.ping(c.Request.Context())
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Services:      map[string]string{"database": "healthy"},
	}
	if err != nil {
		logger.FromGinContext(c).WithError(err).Warn("database health check failed")
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Ready reports whether the service can take traffic
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}
	status := http.StatusOK
	if err := h.ping(c.Request.Context()); err != nil {
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Live answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
