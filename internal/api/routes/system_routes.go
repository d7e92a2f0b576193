package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/observability"
)

type SystemRoutes struct {
	handler *handlers.HealthHandler
	metrics *observability.Metrics
}

func NewSystemRoutes(handler *handlers.HealthHandler, metrics *observability.Metrics) *SystemRoutes {
	return &SystemRoutes{handler: handler, metrics: metrics}
}

// RegisterRoutes mounts the unauthenticated system endpoints: health
// probes, the Prometheus scrape target and the swagger UI. The metrics
// handler serves only the injected registry.
func (r *SystemRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", r.handler.Live)
	router.GET("/health/ready", r.handler.Ready)
	router.GET("/health/cache", r.handler.CacheStats)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		r.metrics.Registry,
		promhttp.HandlerOpts{},
	)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
