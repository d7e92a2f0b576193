package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/pkg/logger"
	"github.com/vitalis-health/backend/pkg/security/auth"
)

// NewRateLimitMiddleware enforces a fixed request window per caller. The
// key prefers the authenticated user and falls back to client IP. Limiter
// failures let the request through rather than blocking traffic on a
// Redis outage.
func NewRateLimitMiddleware(limiter auth.RateLimiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = fmt.Sprintf("user:%d", userID)
		}

		allowed, remaining, resetAt, err := limiter.Allow(c, key)
		if err != nil {
			log.Error("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail("rate limit exceeded, try again later"))
			return
		}

		c.Next()
	}
}
