package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	r := gin.New()
	r.POST("/contact", RateLimiter(client, "contact", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiterWithoutRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", RateLimiter(nil, "contact", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func limitedRouter(t *testing.T, limit int64, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.POST("/contact", RateLimiter(client, "contact", limit, window), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, mr
}

func postFrom(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r, mr := limitedRouter(t, 2, time.Minute)

	w := postFrom(r, "192.0.2.10")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = postFrom(r, "192.0.2.10")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = postFrom(r, "192.0.2.10")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	w = postFrom(r, "198.51.100.7")
	assert.Equal(t, http.StatusNoContent, w.Code, "other clients have their own window")

	assert.Equal(t, time.Minute, mr.TTL("ratelimit:contact:192.0.2.10"))
}

func TestRateLimiterWindowExpires(t *testing.T) {
	r, mr := limitedRouter(t, 1, 30*time.Second)

	require.Equal(t, http.StatusNoContent, postFrom(r, "192.0.2.20").Code)
	require.Equal(t, http.StatusTooManyRequests, postFrom(r, "192.0.2.20").Code)

	mr.FastForward(31 * time.Second)

	w := postFrom(r, "192.0.2.20")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterKeyAlwaysHasTTL(t *testing.T) {
	r, mr := limitedRouter(t, 5, time.Minute)

	for i := 0; i < 3; i++ {
		postFrom(r, "192.0.2.30")
		mr.FastForward(10 * time.Second)
	}

	ttl := mr.TTL("ratelimit:contact:192.0.2.30")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 40*time.Second)
}
