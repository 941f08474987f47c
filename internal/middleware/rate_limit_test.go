package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrypal/backend/internal/testhelpers"
)

func rateLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter.RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimitBoundary(t *testing.T) {
	redisClient := testhelpers.SetupTestRedis(t)
	limiter := NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     3,
		KeyPrefix: "rate_limit:boundary",
	})
	router := rateLimitedRouter(limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	// One past the limit is rejected.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitRemainingHeaderCountsDown(t *testing.T) {
	redisClient := testhelpers.SetupTestRedis(t)
	limiter := NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     5,
		KeyPrefix: "rate_limit:countdown",
	})
	router := rateLimitedRouter(limiter)

	for _, want := range []string{"4", "3", "2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	// A redis client pointed at a closed port makes every check error;
	// requests must still go through.
	broken := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	limiter := NewRateLimiter(broken, RateLimitConfig{
		Window:    time.Hour,
		Limit:     1,
		KeyPrefix: "rate_limit:broken",
	})
	router := rateLimitedRouter(limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	}
}

func TestGetRemainingRequests(t *testing.T) {
	redisClient := testhelpers.SetupTestRedis(t)
	limiter := NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     10,
		KeyPrefix: "rate_limit:remaining",
	})
	ctx := context.Background()

	// Untouched client has the full quota.
	remaining, _, err := limiter.GetRemainingRequests(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	allowed, _, _, err := limiter.IsAllowed(ctx, "client-a")
	require.NoError(t, err)
	require.True(t, allowed)

	// Checking does not consume quota.
	for i := 0; i < 2; i++ {
		remaining, _, err = limiter.GetRemainingRequests(ctx, "client-a")
		require.NoError(t, err)
		assert.Equal(t, 9, remaining)
	}
}
