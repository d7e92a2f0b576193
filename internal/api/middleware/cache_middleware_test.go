package middleware

import (
	stdgzip "compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/pkg/logger"
)

type fakeCacheStore struct {
	entries map[string]string
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{entries: make(map[string]string)}
}

func (f *fakeCacheStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (f *fakeCacheStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCacheStore) ClearByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}
	return nil
}

// newCachedRouter wires the production chain for cached list endpoints:
// compression outermost, then the cache, then the handler.
func newCachedRouter(store CacheStore, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cm := NewCacheMiddleware(store, "test", time.Minute, logger.NewNop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
	})
	router.GET("/api/things", gzip.Gzip(gzip.DefaultCompression), cm.CacheResponse(), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "things retrieved", "data": []string{"a", "b"}})
	})
	router.POST("/api/things", cm.InvalidateOnWrite(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return router
}

func gzipGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	router.ServeHTTP(rec, req)
	return rec
}

func gunzipBody(t *testing.T, rec *httptest.ResponseRecorder) []byte {
	t.Helper()
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	reader, err := stdgzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer reader.Close()

	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := reader.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	return out
}

func TestCacheResponseStoresUncompressedBody(t *testing.T) {
	store := newFakeCacheStore()
	hits := 0
	router := newCachedRouter(store, &hits)

	rec := gzipGet(router, "/api/things")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)

	// The stored entry must be plain JSON, not the compressed stream.
	require.Len(t, store.entries, 1)
	for _, stored := range store.entries {
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stored), &payload))
		assert.Equal(t, true, payload["success"])
	}
}

func TestCacheHitReplaysParseableEnvelope(t *testing.T) {
	store := newFakeCacheStore()
	hits := 0
	router := newCachedRouter(store, &hits)

	first := gzipGet(router, "/api/things")
	require.Equal(t, http.StatusOK, first.Code)

	second := gzipGet(router, "/api/things")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, hits, "second request should be served from cache")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gunzipBody(t, second), &payload))
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "things retrieved", payload["message"])
}

func TestCacheFallsThroughOnCorruptEntry(t *testing.T) {
	store := newFakeCacheStore()
	store.entries["test:1:/api/things?"] = "\x1f\x8b\x08 not json"
	hits := 0
	router := newCachedRouter(store, &hits)

	rec := gzipGet(router, "/api/things")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits, "corrupt cache entry should not be replayed")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gunzipBody(t, rec), &payload))
	assert.Equal(t, true, payload["success"])
}

func TestInvalidateOnWriteClearsUserEntries(t *testing.T) {
	store := newFakeCacheStore()
	hits := 0
	router := newCachedRouter(store, &hits)

	gzipGet(router, "/api/things")
	require.Len(t, store.entries, 1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/things", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Empty(t, store.entries)
}
