package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/pkg/logger"
)

type HealthMetricHandler struct {
	service healthmetric.Service
	logger  *logger.Logger
}

func NewHealthMetricHandler(service healthmetric.Service, logger *logger.Logger) *HealthMetricHandler {
	return &HealthMetricHandler{service: service, logger: logger}
}

func (h *HealthMetricHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateHealthMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := healthmetric.CreateMetricInput{
		UserID:       userID,
		WeightKG:     req.WeightKG,
		SystolicBP:   req.SystolicBP,
		DiastolicBP:  req.DiastolicBP,
		RestingHR:    req.RestingHR,
		BloodGlucose: req.BloodGlucose,
		BodyTempC:    req.BodyTempC,
		Notes:        req.Notes,
	}
	if req.RecordedAt != nil {
		input.RecordedAt = *req.RecordedAt
	}

	metric, err := h.service.CreateMetric(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("health metric recorded", dto.ToHealthMetricResponse(metric)))
}

func (h *HealthMetricHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query struct {
		From  *time.Time `form:"from" time_format:"2006-01-02"`
		To    *time.Time `form:"to" time_format:"2006-01-02"`
		Page  int        `form:"page,default=1"`
		Limit int        `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	metrics, total, err := h.service.ListMetrics(c.Request.Context(), healthmetric.MetricFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("health metrics retrieved",
		dto.NewPagedList(dto.ToHealthMetricResponses(metrics), total, query.Page, query.Limit)))
}

func (h *HealthMetricHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	metric, err := h.service.GetMetric(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("health metric retrieved", dto.ToHealthMetricResponse(metric)))
}

func (h *HealthMetricHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMetric(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("health metric deleted", nil))
}

func (h *HealthMetricHandler) Latest(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	snapshot, err := h.service.LatestSnapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("latest metric retrieved", snapshot))
}
