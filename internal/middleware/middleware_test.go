package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-extraction/config"
	"task-extraction/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newMiddleware(requestsPerMin int) middleware.Middleware {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = requestsPerMin
	return middleware.New(&mockLogger{}, cfg)
}

func TestRequestID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(0)

	engine := gin.New()
	engine.Use(mw.RequestID())

	var seen string
	engine.GET("/x", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if seen == "" {
		t.Error("no request id set on context")
	}
	if got := w.Header().Get(middleware.RequestIDHeader); got != seen {
		t.Errorf("header %s = %q, context value = %q", middleware.RequestIDHeader, got, seen)
	}
}

func TestRequestID_Reused(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(0)

	engine := gin.New()
	engine.Use(mw.RequestID())
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-chosen-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "caller-chosen-id" {
		t.Errorf("header %s = %q, want caller value echoed", middleware.RequestIDHeader, got)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 10 req/min gives a burst of 1 per client.
	mw := newMiddleware(10)

	engine := gin.New()
	engine.POST("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func() int {
		req, _ := http.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(0)

	engine := gin.New()
	engine.POST("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/x", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 with limiting disabled", i, w.Code)
		}
	}
}
