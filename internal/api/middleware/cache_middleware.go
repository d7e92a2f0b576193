package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/pkg/logger"
)

// CacheStore is the slice of the cache client the middleware needs.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	ClearByPattern(ctx context.Context, pattern string) error
}

type CacheMiddleware struct {
	cache  CacheStore
	prefix string
	ttl    time.Duration
	logger *logger.Logger
}

func NewCacheMiddleware(cache CacheStore, prefix string, ttl time.Duration, logger *logger.Logger) *CacheMiddleware {
	return &CacheMiddleware{
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

// responseBuffer tees the response body so a successful payload can be
// cached after the handler runs.
type responseBuffer struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func newResponseBuffer(original gin.ResponseWriter) *responseBuffer {
	return &responseBuffer{
		ResponseWriter: original,
		body:           bytes.NewBuffer(nil),
	}
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseBuffer) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// CacheResponse serves GET responses from Redis within the TTL. Staleness
// up to the TTL is accepted. Must run inside any compression middleware so
// the buffer records the uncompressed body; a cached blob that is not valid
// JSON falls through to the handler.
func (m *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := m.cacheKey(c)
		if cached, err := m.cache.Get(c, key); err == nil {
			var response map[string]interface{}
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				c.JSON(http.StatusOK, response)
				c.Abort()
				return
			}
		}

		writer := c.Writer
		buff := newResponseBuffer(writer)
		c.Writer = buff

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := m.cache.Set(c, key, buff.body.String(), m.ttl); err != nil {
				m.logger.Error("failed to cache response", zap.Error(err))
			}
		}
		c.Writer = writer
	}
}

// InvalidateOnWrite clears the user's cached entries for this prefix
// after a successful mutation.
func (m *CacheMiddleware) InvalidateOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, _ := GetUserID(c)
		pattern := fmt.Sprintf("%s:%d:*", m.prefix, userID)
		if err := m.cache.ClearByPattern(c, pattern); err != nil {
			m.logger.Error("failed to invalidate cache",
				zap.String("pattern", pattern), zap.Error(err))
		}
	}
}

// cacheKey is scoped per user so one caller's data never leaks to
// another.
func (m *CacheMiddleware) cacheKey(c *gin.Context) string {
	userID, _ := GetUserID(c)
	return fmt.Sprintf("%s:%d:%s?%s", m.prefix, userID, c.Request.URL.Path, c.Request.URL.RawQuery)
}
