package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
}

func NewDashboardRoutes(handler *handlers.DashboardHandler) *DashboardRoutes {
	return &DashboardRoutes{handler: handler}
}

// RegisterRoutes mounts the aggregated overview endpoint.
// @Summary Register dashboard routes
// @Tags dashboard
// @Security BearerAuth
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(auth)
	dashboard.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.Overview)
}
