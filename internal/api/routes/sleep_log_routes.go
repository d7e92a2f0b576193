package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type SleepLogRoutes struct {
	handler *handlers.SleepLogHandler
}

func NewSleepLogRoutes(handler *handlers.SleepLogHandler) *SleepLogRoutes {
	return &SleepLogRoutes{handler: handler}
}

// RegisterRoutes mounts the sleep tracking endpoints.
// @Summary Register sleep log routes
// @Tags sleep
// @Security BearerAuth
func (r *SleepLogRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	logs := router.Group("/api/sleep-logs")
	logs.Use(auth)
	logs.Use(cache.InvalidateOnWrite())

	logs.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	logs.POST("", r.handler.Create)
	logs.GET("/stats/summary", cache.CacheResponse(), r.handler.Summary)

	logs.GET("/:id", r.handler.Get)
	logs.PUT("/:id", r.handler.Update)
	logs.DELETE("/:id", r.handler.Delete)
}
