package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type HealthMetricRoutes struct {
	handler *handlers.HealthMetricHandler
}

func NewHealthMetricRoutes(handler *handlers.HealthMetricHandler) *HealthMetricRoutes {
	return &HealthMetricRoutes{handler: handler}
}

// RegisterRoutes mounts the body measurement endpoints.
// @Summary Register health metric routes
// @Tags metrics
// @Security BearerAuth
func (r *HealthMetricRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	metrics := router.Group("/api/health-metrics")
	metrics.Use(auth)
	metrics.Use(cache.InvalidateOnWrite())

	metrics.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	metrics.POST("", r.handler.Create)
	metrics.GET("/latest", cache.CacheResponse(), r.handler.Latest)

	metrics.GET("/:id", r.handler.Get)
	metrics.DELETE("/:id", r.handler.Delete)
}
