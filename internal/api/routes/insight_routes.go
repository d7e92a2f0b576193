package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
)

type InsightRoutes struct {
	handler *handlers.InsightHandler
}

func NewInsightRoutes(handler *handlers.InsightHandler) *InsightRoutes {
	return &InsightRoutes{handler: handler}
}

// RegisterRoutes mounts the insight feed and chat session endpoints.
// @Summary Register insight routes
// @Tags insights
// @Security BearerAuth
func (r *InsightRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	insights := router.Group("/api/insights")
	insights.Use(auth)
	insights.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.List)

	sessions := router.Group("/api/chat/sessions")
	sessions.Use(auth)
	sessions.POST("", r.handler.CreateSession)
	sessions.GET("", r.handler.ListSessions)
	sessions.DELETE("/:id", r.handler.DeleteSession)
	sessions.POST("/:id/messages", r.handler.AddMessage)
	sessions.GET("/:id/messages", r.handler.ListMessages)
}
