package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/pkg/logger"
)

// DashboardHandler aggregates a single-screen overview across domains.
type DashboardHandler struct {
	goalService         healthgoal.Service
	waterService        waterlog.Service
	sleepService        sleeplog.Service
	foodService         foodlog.Service
	metricService       healthmetric.Service
	notificationService notification.Service
	logger              *logger.Logger
}

func NewDashboardHandler(
	goalService healthgoal.Service,
	waterService waterlog.Service,
	sleepService sleeplog.Service,
	foodService foodlog.Service,
	metricService healthmetric.Service,
	notificationService notification.Service,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		goalService:         goalService,
		waterService:        waterService,
		sleepService:        sleepService,
		foodService:         foodService,
		metricService:       metricService,
		notificationService: notificationService,
		logger:              logger,
	}
}

type dashboardResponse struct {
	Date         string                  `json:"date"`
	Goals        *healthgoal.GoalStats   `json:"goals"`
	Hydration    *waterlog.DailyStats    `json:"hydration"`
	Nutrition    *foodlog.DailyNutrition `json:"nutrition"`
	LastNight    *sleeplog.NightScore    `json:"last_night,omitempty"`
	LatestMetric *healthmetric.Snapshot  `json:"latest_metric,omitempty"`
	UnreadCount  int64                   `json:"unread_notifications"`
}

// Overview assembles today's snapshot. Sections with no data yet are
// omitted instead of failing the whole response.
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	ctx := c.Request.Context()
	now := time.Now()

	goals, err := h.goalService.StatsOverview(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	hydration, err := h.waterService.DailyStats(ctx, userID, now)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	nutrition, err := h.foodService.DailyNutrition(ctx, userID, now)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dashboardResponse{
		Date:      now.Format("2006-01-02"),
		Goals:     goals,
		Hydration: hydration,
		Nutrition: nutrition,
	}

	nights, _, err := h.sleepService.ListLogs(ctx, sleeplog.LogFilter{UserID: userID, Limit: 1})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if len(nights) > 0 {
		night := &nights[0]
		resp.LastNight = &sleeplog.NightScore{
			Date:          night.WakeTime.Format("2006-01-02"),
			Score:         night.SleepScore(),
			DurationHours: night.DurationHours,
			Quality:       night.Quality,
		}
	}

	snapshot, err := h.metricService.LatestSnapshot(ctx, userID)
	if err != nil && !errors.Is(err, healthmetric.ErrMetricNotFound) {
		respondError(c, h.logger, err)
		return
	}
	resp.LatestMetric = snapshot

	unread, err := h.notificationService.UnreadCount(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	resp.UnreadCount = unread

	c.JSON(http.StatusOK, dto.OK("dashboard retrieved", resp))
}
