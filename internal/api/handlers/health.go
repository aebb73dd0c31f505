package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreDirectory is the part of the tenant store manager the health checks need
type StoreDirectory interface {
	List() ([]string, error)
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	stores  StoreDirectory
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(stores StoreDirectory, version string) *HealthHandler {
	return &HealthHandler{
		stores:  stores,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Tenants   int               `json:"tenants"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including the tenant store directory
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  make(map[string]string),
	}

	ids, err := h.stores.List()
	if err != nil {
		response.Status = "unhealthy"
		response.Services["tenant_stores"] = "error: " + err.Error()
	} else {
		response.Tenants = len(ids)
		response.Services["tenant_stores"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once at least one tenant store is provisioned
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	ids, err := h.stores.List()
	switch {
	case err != nil:
		ready = false
		services["tenant_stores"] = "not ready: " + err.Error()
	case len(ids) == 0:
		ready = false
		services["tenant_stores"] = "not ready: no tenant provisioned"
	default:
		services["tenant_stores"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
