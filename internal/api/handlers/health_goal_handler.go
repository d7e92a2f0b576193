package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/pkg/logger"
)

type HealthGoalHandler struct {
	service healthgoal.Service
	logger  *logger.Logger
}

func NewHealthGoalHandler(service healthgoal.Service, logger *logger.Logger) *HealthGoalHandler {
	return &HealthGoalHandler{service: service, logger: logger}
}

func (h *HealthGoalHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateHealthGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := healthgoal.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		GoalType:    healthgoal.GoalType(req.GoalType),
		Priority:    healthgoal.GoalPriority(req.Priority),
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		TargetDate:  req.TargetDate,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}

	goal, err := h.service.CreateGoal(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("goal created", dto.ToHealthGoalResponse(goal)))
}

// List returns the filtered, paginated goals together with the stats
// summary over the user's whole collection.
func (h *HealthGoalHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query dto.ListHealthGoalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters: "+err.Error()))
		return
	}

	filter := healthgoal.GoalFilter{
		UserID:         userID,
		Search:         query.Search,
		StartDateFrom:  query.StartDateFrom,
		StartDateTo:    query.StartDateTo,
		TargetDateFrom: query.TargetDateFrom,
		TargetDateTo:   query.TargetDateTo,
		Page:           query.Page,
		Limit:          query.Limit,
	}
	if query.GoalType != nil {
		goalType := healthgoal.GoalType(*query.GoalType)
		filter.GoalType = &goalType
	}
	if query.Status != nil {
		status := healthgoal.GoalStatus(*query.Status)
		filter.Status = &status
	}
	if query.Priority != nil {
		priority := healthgoal.GoalPriority(*query.Priority)
		filter.Priority = &priority
	}

	goals, total, err := h.service.ListGoals(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	stats, err := h.service.StatsOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	paged := dto.NewPagedList(nil, total, query.Page, query.Limit)
	response := dto.HealthGoalListResponse{
		Items:      dto.ToHealthGoalResponses(goals),
		Total:      total,
		Page:       paged.Page,
		Limit:      paged.Limit,
		TotalPages: paged.TotalPages,
		Stats:      stats,
	}

	c.JSON(http.StatusOK, dto.OK("goals retrieved", response))
}

func (h *HealthGoalHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	goal, err := h.service.GetGoal(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("goal retrieved", dto.ToHealthGoalResponse(goal)))
}

func (h *HealthGoalHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateHealthGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	input := healthgoal.UpdateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		StartDate:   req.StartDate,
		TargetDate:  req.TargetDate,
	}
	if req.GoalType != nil {
		goalType := healthgoal.GoalType(*req.GoalType)
		input.GoalType = &goalType
	}
	if req.Priority != nil {
		priority := healthgoal.GoalPriority(*req.Priority)
		input.Priority = &priority
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("goal updated", dto.ToHealthGoalResponse(goal)))
}

func (h *HealthGoalHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("goal deleted", nil))
}

func (h *HealthGoalHandler) UpdateProgress(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	goal, err := h.service.UpdateProgress(c.Request.Context(), id, userID, req.CurrentValue)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("progress updated", dto.ToHealthGoalResponse(goal)))
}

// transition builds a status-transition handler for one target status.
func (h *HealthGoalHandler) transition(status healthgoal.GoalStatus, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		id, ok := pathID(c)
		if !ok {
			return
		}

		goal, err := h.service.TransitionStatus(c.Request.Context(), id, userID, status)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, dto.OK(message, dto.ToHealthGoalResponse(goal)))
	}
}

func (h *HealthGoalHandler) Complete(c *gin.Context) {
	h.transition(healthgoal.StatusCompleted, "goal completed")(c)
}

func (h *HealthGoalHandler) Pause(c *gin.Context) {
	h.transition(healthgoal.StatusPaused, "goal paused")(c)
}

func (h *HealthGoalHandler) Resume(c *gin.Context) {
	h.transition(healthgoal.StatusActive, "goal resumed")(c)
}

func (h *HealthGoalHandler) Cancel(c *gin.Context) {
	h.transition(healthgoal.StatusCancelled, "goal cancelled")(c)
}

func (h *HealthGoalHandler) StatsOverview(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stats, err := h.service.StatsOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("stats retrieved", stats))
}

func (h *HealthGoalHandler) MonthlyProgress(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	entries, err := h.service.MonthlyProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("monthly progress retrieved", entries))
}

func (h *HealthGoalHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("templates retrieved", h.service.Templates()))
}

func (h *HealthGoalHandler) Recommendations(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	recommendations, err := h.service.Recommendations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("recommendations retrieved", recommendations))
}

// parseDateParam reads a YYYY-MM-DD query parameter with a fallback.
func parseDateParam(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid "+name+" parameter, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return parsed, true
}
