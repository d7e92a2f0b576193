package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/insight"
	"github.com/vitalis-health/backend/pkg/logger"
)

type InsightHandler struct {
	service insight.Service
	logger  *logger.Logger
}

func NewInsightHandler(service insight.Service, logger *logger.Logger) *InsightHandler {
	return &InsightHandler{service: service, logger: logger}
}

func (h *InsightHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query struct {
		Category *string `form:"category"`
		Page     int     `form:"page,default=1"`
		Limit    int     `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := insight.InsightFilter{
		UserID: userID,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.Category != nil {
		category := insight.Category(*query.Category)
		filter.Category = &category
	}

	insights, total, err := h.service.ListInsights(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("insights retrieved",
		dto.NewPagedList(insights, total, query.Page, query.Limit)))
}

func (h *InsightHandler) CreateSession(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), userID, req.Title)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("chat session created", session))
}

func (h *InsightHandler) ListSessions(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	sessions, err := h.service.ListSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("chat sessions retrieved", sessions))
}

func (h *InsightHandler) DeleteSession(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("chat session deleted", nil))
}

func (h *InsightHandler) AddMessage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Role    string `json:"role" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	message, err := h.service.AddMessage(c.Request.Context(), id, userID, insight.MessageRole(req.Role), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("message added", message))
}

func (h *InsightHandler) ListMessages(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	messages, err := h.service.ListMessages(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("messages retrieved", messages))
}
