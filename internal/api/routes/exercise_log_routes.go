package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
)

type ExerciseLogRoutes struct {
	handler *handlers.ExerciseLogHandler
}

func NewExerciseLogRoutes(handler *handlers.ExerciseLogHandler) *ExerciseLogRoutes {
	return &ExerciseLogRoutes{handler: handler}
}

// RegisterRoutes mounts the exercise tracking endpoints.
// @Summary Register exercise log routes
// @Tags exercise
// @Security BearerAuth
func (r *ExerciseLogRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc, cache *middleware.CacheMiddleware) {
	logs := router.Group("/api/exercise-logs")
	logs.Use(auth)
	logs.Use(cache.InvalidateOnWrite())

	logs.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.List)
	logs.POST("", r.handler.Create)
	logs.GET("/stats/weekly", cache.CacheResponse(), r.handler.WeeklySummary)

	logs.GET("/:id", r.handler.Get)
	logs.DELETE("/:id", r.handler.Delete)
}
