package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/internal/infrastructure/cache"
	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"github.com/vitalis-health/backend/pkg/logger"
)

// HealthHandler serves liveness, readiness and cache statistics probes.
type HealthHandler struct {
	db      *connection.Database
	cache   *cache.RedisClient
	logger  *logger.Logger
	started time.Time
}

func NewHealthHandler(db *connection.Database, cache *cache.RedisClient, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   cache,
		logger:  logger,
		started: time.Now(),
	}
}

// Live reports that the process is up.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("service is healthy", gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	}))
}

// Ready checks the database and cache connections.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	healthy := true

	sqlDB, err := h.db.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("database readiness check failed", zap.Error(err))
		checks["database"] = "unreachable"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.cache.HealthCheck(ctx); err != nil {
		h.logger.Warn("redis readiness check failed", zap.Error(err))
		checks["redis"] = "unreachable"
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, dto.Fail("service is not ready"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("service is ready", checks))
}

// CacheStats reports cache hit/miss counters.
func (h *HealthHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("cache statistics retrieved", h.cache.GetMetrics()))
}
