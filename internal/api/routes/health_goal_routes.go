package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type HealthGoalRoutes struct {
	handler *handlers.HealthGoalHandler
}

func NewHealthGoalRoutes(handler *handlers.HealthGoalHandler) *HealthGoalRoutes {
	return &HealthGoalRoutes{handler: handler}
}

// RegisterRoutes mounts the goal CRUD, progress and statistics endpoints.
// @Summary Register health goal routes
// @Tags goals
// @Security BearerAuth
func (r *HealthGoalRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	goals := router.Group("/api/health-goals")
	goals.Use(auth)
	goals.Use(cache.InvalidateOnWrite())

	// Specific routes first so they are not swallowed by /:id.
	goals.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	goals.POST("", r.handler.Create)
	goals.GET("/stats/overview", cache.CacheResponse(), r.handler.StatsOverview)
	goals.GET("/stats/monthly", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.MonthlyProgress)
	goals.GET("/templates", r.handler.Templates)
	goals.GET("/recommendations", r.handler.Recommendations)

	goals.GET("/:id", cache.CacheResponse(), r.handler.Get)
	goals.PUT("/:id", r.handler.Update)
	goals.DELETE("/:id", r.handler.Delete)

	goals.PUT("/:id/progress", r.handler.UpdateProgress)
	goals.PUT("/:id/complete", r.handler.Complete)
	goals.PUT("/:id/pause", r.handler.Pause)
	goals.PUT("/:id/resume", r.handler.Resume)
	goals.PUT("/:id/cancel", r.handler.Cancel)
}
