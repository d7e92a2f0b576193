package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/pkg/logger"
)

type SleepLogHandler struct {
	service sleeplog.Service
	logger  *logger.Logger
}

func NewSleepLogHandler(service sleeplog.Service, logger *logger.Logger) *SleepLogHandler {
	return &SleepLogHandler{service: service, logger: logger}
}

func (h *SleepLogHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateSleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	log, err := h.service.CreateLog(c.Request.Context(), sleeplog.CreateLogInput{
		UserID:              userID,
		Bedtime:             req.Bedtime,
		WakeTime:            req.WakeTime,
		DurationHours:       req.DurationHours,
		Quality:             sleeplog.SleepQuality(req.Quality),
		EfficiencyPct:       req.EfficiencyPct,
		TimeToFallAsleepMin: req.TimeToFallAsleepMin,
		AwakeningsCount:     req.AwakeningsCount,
		DeepSleepMinutes:    req.DeepSleepMinutes,
		LightSleepMinutes:   req.LightSleepMinutes,
		RemSleepMinutes:     req.RemSleepMinutes,
		AwakeMinutes:        req.AwakeMinutes,
		Notes:               req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("sleep log created", dto.ToSleepLogResponse(log)))
}

func (h *SleepLogHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query struct {
		Quality *string    `form:"quality"`
		From    *time.Time `form:"from" time_format:"2006-01-02"`
		To      *time.Time `form:"to" time_format:"2006-01-02"`
		Page    int        `form:"page,default=1"`
		Limit   int        `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := sleeplog.LogFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.Quality != nil {
		quality := sleeplog.SleepQuality(*query.Quality)
		filter.Quality = &quality
	}

	logs, total, err := h.service.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("sleep logs retrieved",
		dto.NewPagedList(dto.ToSleepLogResponses(logs), total, query.Page, query.Limit)))
}

func (h *SleepLogHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.OK("sleep log retrieved", dto.ToSleepLogResponse(log)))
}

func (h *SleepLogHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := sleeplog.UpdateLogInput{
		Bedtime:             req.Bedtime,
		WakeTime:            req.WakeTime,
		DurationHours:       req.DurationHours,
		EfficiencyPct:       req.EfficiencyPct,
		TimeToFallAsleepMin: req.TimeToFallAsleepMin,
		AwakeningsCount:     req.AwakeningsCount,
		Notes:               req.Notes,
	}
	if req.Quality != nil {
		quality := sleeplog.SleepQuality(*req.Quality)
		input.Quality = &quality
	}

	log, err := h.service.UpdateLog(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("sleep log updated", dto.ToSleepLogResponse(log)))
}

func (h *SleepLogHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLog(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("sleep log deleted", nil))
}

func (h *SleepLogHandler) Summary(c *gin.Context) {
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

	summary, err := h.service.RangeSummary(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("sleep summary retrieved", summary))
}
