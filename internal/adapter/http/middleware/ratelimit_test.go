package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gold-ledger/internal/adapter/http/middleware"
	redisStore "gold-ledger/internal/adapter/storage/redis"
	"gold-ledger/internal/core/ports"
	"gold-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(store ports.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test", func(c *gin.Context) {
		if sub := c.GetHeader("X-Test-Subject"); sub != "" {
			c.Set(middleware.CtxSubject, sub)
		}
		c.Next()
	}, middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func doGet(router *gin.Engine, subject string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	if subject != "" {
		req.Header.Set("X-Test-Subject", subject)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		w := doGet(router, "")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doGet(router, "").Code)
	}

	w := doGet(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_OperatorsCountedSeparately(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doGet(router, "alice").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "alice").Code)
	assert.Equal(t, http.StatusOK, doGet(router, "bob").Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mocks.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(3), time.Minute).Return(nil, errors.New("redis down"))

	w := doGet(setupRateLimitRouter(limiter), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(60), rules["public"].Limit)
	assert.Equal(t, int64(30), rules["writes"].Limit)
	assert.Equal(t, int64(10), rules["reports"].Limit)
	assert.Equal(t, int64(120), rules["operator"].Limit)
}
