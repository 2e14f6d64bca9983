package limiter

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, rps, burst int, ttl time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := New(rps, burst, ttl)
	t.Cleanup(l.Stop)

	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func doGet(router *gin.Engine, addr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestLimiter(t *testing.T) {
	router := newTestRouter(t, 1, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "10.0.0.1:1234"))
}

func TestLimiter_SeparateClients(t *testing.T) {
	router := newTestRouter(t, 1, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.2:1234"))
}

func TestLimiter_EvictsIdleClients(t *testing.T) {
	router := newTestRouter(t, 1, 1, 20*time.Millisecond)

	assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "10.0.0.1:1234"))

	// once the idle entry is evicted the client gets a fresh bucket
	assert.Eventually(t, func() bool {
		return doGet(router, "10.0.0.1:1234") == http.StatusOK
	}, time.Second, 25*time.Millisecond)
}

func TestLimiter_StopEndsEviction(t *testing.T) {
	before := runtime.NumGoroutine()

	limiters := make([]*Limiter, 0, 10)
	for i := 0; i < 10; i++ {
		limiters = append(limiters, New(1, 1, time.Millisecond))
	}

	for _, l := range limiters {
		l.Stop()
		l.Stop() // idempotent
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+1
	}, time.Second, 10*time.Millisecond)
}
