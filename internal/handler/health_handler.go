package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customsduty/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	tariffService service.TariffService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(tariffService service.TariffService) *HealthHandler {
	return &HealthHandler{tariffService: tariffService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is ready once it has a
// country list to resolve requests against.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if len(h.tariffService.Countries()) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "no reference countries configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
