package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 5)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Expected request beyond burst to be rejected")
	}
}

func TestRateLimiter_PerClientIsolation(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("Expected first client to be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Expected first client to be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("Expected second client to have its own limiter")
	}
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	mw := RateLimitMiddleware(rl)(next)

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := mw(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != want {
			t.Errorf("Request %d: expected status %d, got %d", i+1, want, rec.Code)
		}
		if want == http.StatusTooManyRequests && rec.Header().Get("Retry-After") == "" {
			t.Error("Expected Retry-After header on limited response")
		}
	}
}
