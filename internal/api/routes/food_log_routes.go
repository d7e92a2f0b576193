package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type FoodLogRoutes struct {
	handler *handlers.FoodLogHandler
}

func NewFoodLogRoutes(handler *handlers.FoodLogHandler) *FoodLogRoutes {
	return &FoodLogRoutes{handler: handler}
}

// RegisterRoutes mounts the meal tracking endpoints.
// @Summary Register food log routes
// @Tags nutrition
// @Security BearerAuth
func (r *FoodLogRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	logs := router.Group("/api/food-logs")
	logs.Use(auth)
	logs.Use(cache.InvalidateOnWrite())

	logs.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	logs.POST("", r.handler.Create)
	logs.GET("/stats/daily", cache.CacheResponse(), r.handler.DailyNutrition)

	logs.GET("/:id", r.handler.Get)
	logs.DELETE("/:id", r.handler.Delete)
}
