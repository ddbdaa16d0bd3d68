package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/middleware"
	"reminder-extractor/pkg/log"
)

func newEngine(mw middleware.Middleware, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		if seen != nil {
			*seen = log.RequestID(c.Request.Context())
		}
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	var seen string
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}), &seen)

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" || id != seen {
			t.Errorf("header %q, context %q", id, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if seen != "abc-123" || w.Header().Get(middleware.HeaderRequestID) != "abc-123" {
			t.Errorf("request id = %q", seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60}), nil)

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] != 6 || codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("codes = %v, want 6 OK and 4 throttled", codes)
	}

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}), nil)
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil).WithContext(context.Background()))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d", i, w.Code)
		}
	}
}
