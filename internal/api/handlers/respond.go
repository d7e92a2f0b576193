package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/internal/domain/insight"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/user"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/pkg/logger"
)

var notFoundErrors = []error{
	healthgoal.ErrGoalNotFound,
	waterlog.ErrLogNotFound,
	sleeplog.ErrLogNotFound,
	exerciselog.ErrLogNotFound,
	foodlog.ErrLogNotFound,
	healthmetric.ErrMetricNotFound,
	notification.ErrNotificationNotFound,
	insight.ErrInsightNotFound,
	insight.ErrSessionNotFound,
	user.ErrUserNotFound,
}

var validationErrors = []error{
	healthgoal.ErrGoalCompleted,
	healthgoal.ErrGoalNotCompletable,
	healthgoal.ErrInvalidStatus,
	waterlog.ErrInvalidAmount,
	sleeplog.ErrInvalidLog,
	exerciselog.ErrInvalidLog,
	foodlog.ErrInvalidLog,
	healthmetric.ErrInvalidMetric,
	insight.ErrInvalidInput,
}

// respondError maps domain sentinels to a single consistent set of HTTP
// statuses: missing or unowned rows are 404, rule violations 400, and
// everything else a generic 500 that leaks no internal detail.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.Fail(sentinel.Error()))
			return
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
	}

	log.Error("request failed with internal error",
		zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.Fail("an internal error occurred"))
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
