package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalis-health/backend/internal/observability"
)

// NewMetricsMiddleware records request duration, count and sizes into the
// injected metrics registry.
func NewMetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(elapsed)
		metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Request.ContentLength > 0 {
			metrics.RequestSize.WithLabelValues(c.Request.Method, path).Observe(float64(c.Request.ContentLength))
		}
		metrics.ResponseSize.WithLabelValues(c.Request.Method, path).Observe(float64(c.Writer.Size()))
	}
}
