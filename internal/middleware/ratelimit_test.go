package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/middleware"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(rl *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiter_RefusesBeyondBurst(t *testing.T) {
	router := newLimitedRouter(middleware.NewRateLimiter(60, 2))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-API-Key", "flk_0123456789abcdef")
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	router := newLimitedRouter(middleware.NewRateLimiter(60, 1))

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqA.Header.Set("X-API-Key", "flk_aaaaaaaaaaaaaaaa")
	router.ServeHTTP(first, reqA)
	assert.Equal(t, http.StatusOK, first.Code)

	exhausted := httptest.NewRecorder()
	router.ServeHTTP(exhausted, reqA)
	assert.Equal(t, http.StatusTooManyRequests, exhausted.Code)

	other := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqB.Header.Set("X-API-Key", "flk_bbbbbbbbbbbbbbbb")
	router.ServeHTTP(other, reqB)
	assert.Equal(t, http.StatusOK, other.Code)
}
