package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/pkg/logger"
)

type WaterLogHandler struct {
	service waterlog.Service
	logger  *logger.Logger
}

func NewWaterLogHandler(service waterlog.Service, logger *logger.Logger) *WaterLogHandler {
	return &WaterLogHandler{service: service, logger: logger}
}

func (h *WaterLogHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateWaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := waterlog.CreateLogInput{
		UserID:    userID,
		AmountML:  req.AmountML,
		DrinkType: waterlog.DrinkType(req.DrinkType),
	}
	if req.ConsumedAt != nil {
		input.ConsumedAt = *req.ConsumedAt
	}

	log, err := h.service.CreateLog(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("water log created", dto.ToWaterLogResponse(log)))
}

func (h *WaterLogHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query dto.ListWaterLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := waterlog.LogFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.DrinkType != nil {
		drinkType := waterlog.DrinkType(*query.DrinkType)
		filter.DrinkType = &drinkType
	}

	logs, total, err := h.service.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("water logs retrieved",
		dto.NewPagedList(dto.ToWaterLogResponses(logs), total, query.Page, query.Limit)))
}

func (h *WaterLogHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.OK("water log retrieved", dto.ToWaterLogResponse(log)))
}

func (h *WaterLogHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateWaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := waterlog.UpdateLogInput{
		AmountML:   req.AmountML,
		ConsumedAt: req.ConsumedAt,
	}
	if req.DrinkType != nil {
		drinkType := waterlog.DrinkType(*req.DrinkType)
		input.DrinkType = &drinkType
	}

	log, err := h.service.UpdateLog(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("water log updated", dto.ToWaterLogResponse(log)))
}

func (h *WaterLogHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLog(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("water log deleted", nil))
}

func (h *WaterLogHandler) DailyStats(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	date, ok := parseDateParam(c, "date", time.Now())
	if !ok {
		return
	}

	stats, err := h.service.DailyStats(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("daily stats retrieved", stats))
}

func (h *WaterLogHandler) WeeklyStats(c *gin.Context) {
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

	stats, err := h.service.WeeklyStats(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("weekly stats retrieved", stats))
}
