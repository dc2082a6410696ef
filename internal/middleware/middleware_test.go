package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-tracker/config"
	"todo-tracker/pkg/log"
)

func TestRateLimiterAllow(t *testing.T) {
	// 60 per minute gives a burst of 6 and a refill of one token per second.
	rl := newRateLimiter(60, 10)

	for i := 0; i < 6; i++ {
		if err := rl.Allow("10.0.0.1"); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
	}
	if err := rl.Allow("10.0.0.1"); err == nil {
		t.Errorf("expected burst to be exhausted")
	}
	if err := rl.Allow("10.0.0.2"); err != nil {
		t.Errorf("other clients must have their own bucket: %v", err)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 10, MaxClients: 10})
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// Burst is max(10/10, 1) = 1.
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected status codes %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := w.Header().Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected generated UUID, got %q", id)
		}
		if w.Body.String() != id {
			t.Errorf("context id %q differs from header %q", w.Body.String(), id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(HeaderRequestID, "client-42")
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "client-42" || w.Body.String() != "client-42" {
			t.Errorf("request id not propagated: header=%q body=%q", w.Header().Get(HeaderRequestID), w.Body.String())
		}
	})
}
