package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/handlers"
)

type UserRoutes struct {
	handler *handlers.UserHandler
}

func NewUserRoutes(handler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{handler: handler}
}

// RegisterRoutes mounts the profile and preference endpoints.
// @Summary Register user routes
// @Tags users
// @Security BearerAuth
func (r *UserRoutes) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	users := router.Group("/api/users")
	users.Use(auth)

	users.GET("/me", r.handler.GetProfile)
	users.PUT("/me", r.handler.UpdateProfile)
	users.GET("/me/preferences", r.handler.GetPreferences)
	users.PUT("/me/preferences", r.handler.UpdatePreferences)
}
