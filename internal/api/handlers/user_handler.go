package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/user"
	"github.com/vitalis-health/backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
	logger  *logger.Logger
}

func NewUserHandler(service user.Service, logger *logger.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("profile retrieved", dto.ToUserResponse(profile)))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, user.UpdateUserInput{
		Name:        req.Name,
		HeightCM:    req.HeightCM,
		WeightKG:    req.WeightKG,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("profile updated", dto.ToUserResponse(profile)))
}

func (h *UserHandler) GetPreferences(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	prefs, err := h.service.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("preferences retrieved", prefs))
}

func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	prefs, err := h.service.UpdatePreferences(c.Request.Context(), userID, user.UpdatePreferenceInput{
		DailyWaterGoalML:   req.DailyWaterGoalML,
		DailyCalorieGoal:   req.DailyCalorieGoal,
		SleepGoalHours:     req.SleepGoalHours,
		GoalReminders:      req.GoalReminders,
		HydrationReminders: req.HydrationReminders,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("preferences updated", prefs))
}
