package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type WaterLogRoutes struct {
	handler *handlers.WaterLogHandler
}

func NewWaterLogRoutes(handler *handlers.WaterLogHandler) *WaterLogRoutes {
	return &WaterLogRoutes{handler: handler}
}

// RegisterRoutes mounts the water intake endpoints.
// @Summary Register water log routes
// @Tags water
// @Security BearerAuth
func (r *WaterLogRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	logs := router.Group("/api/water-logs")
	logs.Use(auth)
	logs.Use(cache.InvalidateOnWrite())

	logs.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	logs.POST("", r.handler.Create)
	logs.GET("/stats/daily", cache.CacheResponse(), r.handler.DailyStats)
	logs.GET("/stats/weekly", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.WeeklyStats)

	logs.GET("/:id", r.handler.Get)
	logs.PUT("/:id", r.handler.Update)
	logs.DELETE("/:id", r.handler.Delete)
}
