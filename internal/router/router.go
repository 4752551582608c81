package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customsduty/internal/handler"
	"customsduty/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log *zap.Logger,
	allowedOrigins []string,
	tariffH *handler.TariffHandler,
	hsnH *handler.HSNHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	tariff := v1.Group("/tariff")
	tariff.POST("", tariffH.Lookup)
	tariff.POST("/export", tariffH.Export)

	v1.POST("/duty/compute", tariffH.Compute)
	v1.GET("/countries", tariffH.Countries)
	v1.GET("/hsn/search", hsnH.Search)

	return r
}
