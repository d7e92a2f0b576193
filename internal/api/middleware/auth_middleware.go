package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/internal/api/dto"
	"github.com/vitalis-health/backend/pkg/logger"
	"github.com/vitalis-health/backend/pkg/security/auth"
)

const (
	bearerSchema = "Bearer "
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// NewAuthMiddleware validates the bearer token and stores the caller's
// identity on the request context. Token issuance happens externally;
// this layer only verifies.
func NewAuthMiddleware(jwtSecret string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authorization header is required"))
			return
		}

		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid authorization header format"))
			return
		}

		tokenString := authHeader[len(bearerSchema):]
		claims, err := auth.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			log.Warn("token validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid or expired token"))
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// GetUserID extracts the authenticated user's id from the context. The
// boolean is false on unauthenticated requests.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
