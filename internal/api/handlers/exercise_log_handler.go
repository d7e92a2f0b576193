package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/pkg/logger"
)

type ExerciseLogHandler struct {
	service exerciselog.Service
	logger  *logger.Logger
}

func NewExerciseLogHandler(service exerciselog.Service, logger *logger.Logger) *ExerciseLogHandler {
	return &ExerciseLogHandler{service: service, logger: logger}
}

func (h *ExerciseLogHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := exerciselog.CreateLogInput{
		UserID:         userID,
		ActivityType:   exerciselog.ActivityType(req.ActivityType),
		DurationMin:    req.DurationMin,
		Intensity:      exerciselog.Intensity(req.Intensity),
		CaloriesBurned: req.CaloriesBurned,
		DistanceKM:     req.DistanceKM,
		Notes:          req.Notes,
	}
	if req.PerformedAt != nil {
		input.PerformedAt = *req.PerformedAt
	}

	log, err := h.service.CreateLog(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("exercise log created", dto.ToExerciseLogResponse(log)))
}

func (h *ExerciseLogHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query struct {
		ActivityType *string    `form:"activity_type"`
		Intensity    *string    `form:"intensity"`
		From         *time.Time `form:"from" time_format:"2006-01-02"`
		To           *time.Time `form:"to" time_format:"2006-01-02"`
		Page         int        `form:"page,default=1"`
		Limit        int        `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := exerciselog.LogFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.ActivityType != nil {
		activityType := exerciselog.ActivityType(*query.ActivityType)
		filter.ActivityType = &activityType
	}
	if query.Intensity != nil {
		intensity := exerciselog.Intensity(*query.Intensity)
		filter.Intensity = &intensity
	}

	logs, total, err := h.service.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("exercise logs retrieved",
		dto.NewPagedList(dto.ToExerciseLogResponses(logs), total, query.Page, query.Limit)))
}

func (h *ExerciseLogHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	log, err := h.service.GetLog(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("exercise log retrieved", dto.ToExerciseLogResponse(log)))
}

func (h *ExerciseLogHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLog(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("exercise log deleted", nil))
}

func (h *ExerciseLogHandler) WeeklySummary(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	now := time.Now()
	start, ok := parseDateParam(c, "start_date", now.AddDate(0, 0, -6))
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date", now)
	if !ok {
		return
	}

	summary, err := h.service.WeeklySummary(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("weekly summary retrieved", summary))
}
