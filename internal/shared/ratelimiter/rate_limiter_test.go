package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit per window", func(t *testing.T) {
		rl := NewRateLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("1.2.3.4"), "call %d should be allowed", i+1)
		}
		assert.False(t, rl.Allow("1.2.3.4"), "call over the limit should be rejected")
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Minute)

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("5.6.7.8"), "a different key has its own budget")
	})

	t.Run("stale windows are evicted", func(t *testing.T) {
		rl := NewRateLimiter(1, 10*time.Millisecond)

		rl.Allow("1.2.3.4")
		rl.Allow("5.6.7.8")

		time.Sleep(15 * time.Millisecond)
		rl.Allow("9.9.9.9")

		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.NotContains(t, rl.windows, "1.2.3.4")
		assert.NotContains(t, rl.windows, "5.6.7.8")
		assert.Contains(t, rl.windows, "9.9.9.9")
	})

	t.Run("window reset restores the budget", func(t *testing.T) {
		rl := NewRateLimiter(1, 10*time.Millisecond)

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))

		time.Sleep(15 * time.Millisecond)
		assert.True(t, rl.Allow("1.2.3.4"), "budget should recover after the window")
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(NewRateLimiter(2, time.Minute)))
	router.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many requests")
}
