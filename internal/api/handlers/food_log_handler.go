package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/pkg/logger"
)

type FoodLogHandler struct {
	service foodlog.Service
	logger  *logger.Logger
}

func NewFoodLogHandler(service foodlog.Service, logger *logger.Logger) *FoodLogHandler {
	return &FoodLogHandler{service: service, logger: logger}
}

func (h *FoodLogHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := foodlog.CreateLogInput{
		UserID:       userID,
		MealType:     foodlog.MealType(req.MealType),
		Description:  req.Description,
		Calories:     req.Calories,
		ProteinGrams: req.ProteinGrams,
		CarbsGrams:   req.CarbsGrams,
		FatGrams:     req.FatGrams,
	}
	if req.ConsumedAt != nil {
		input.ConsumedAt = *req.ConsumedAt
	}

	log, err := h.service.CreateLog(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("food log created", dto.ToFoodLogResponse(log)))
}

func (h *FoodLogHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query struct {
		MealType *string    `form:"meal_type"`
		From     *time.Time `form:"from" time_format:"2006-01-02"`
		To       *time.Time `form:"to" time_format:"2006-01-02"`
		Page     int        `form:"page,default=1"`
		Limit    int        `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := foodlog.LogFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.MealType != nil {
		mealType := foodlog.MealType(*query.MealType)
		filter.MealType = &mealType
	}

	logs, total, err := h.service.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("food logs retrieved",
		dto.NewPagedList(dto.ToFoodLogResponses(logs), total, query.Page, query.Limit)))
}

func (h *FoodLogHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.OK("food log retrieved", dto.ToFoodLogResponse(log)))
}

func (h *FoodLogHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLog(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("food log deleted", nil))
}

func (h *FoodLogHandler) DailyNutrition(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	date, ok := parseDateParam(c, "date", time.Now())
	if !ok {
		return
	}

	nutrition, err := h.service.DailyNutrition(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("daily nutrition retrieved", nutrition))
}
