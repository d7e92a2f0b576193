package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
)

type NotificationRoutes struct {
	handler *handlers.NotificationHandler
}

func NewNotificationRoutes(handler *handlers.NotificationHandler) *NotificationRoutes {
	return &NotificationRoutes{handler: handler}
}

// RegisterRoutes mounts the notification endpoints. These are not cached
// so the unread count is always current.
// @Summary Register notification routes
// @Tags notifications
// @Security BearerAuth
func (r *NotificationRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	notifications := router.Group("/api/notifications")
	notifications.Use(auth)

	notifications.GET("", r.handler.List)
	notifications.GET("/unread-count", r.handler.UnreadCount)
	notifications.PUT("/read-all", r.handler.MarkAllRead)
	notifications.PUT("/:id/read", r.handler.MarkRead)
	notifications.DELETE("/:id", r.handler.Delete)
}
