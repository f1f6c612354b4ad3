package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rehaevents/ticketing/internal/config"
)

func runLimited(t *testing.T, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/bookings")

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func enabledLimit() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
}

// Without Redis the limiter must be a pass-through, never a block:
// dropping bookings over a limiter outage would be worse than letting
// a burst through.
func TestTokenBucketDegradesToNoOp(t *testing.T) {
	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	t.Cleanup(func() { _ = unreachable.Close() })

	cases := []struct {
		name string
		cfg  config.RateLimitConfig
		rdb  *redis.Client
	}{
		{"nil redis client", enabledLimit(), nil},
		{"limiter disabled", config.RateLimitConfig{Enabled: false}, nil},
		{"redis unreachable", enabledLimit(), unreachable},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewTokenBucket(tt.cfg, tt.rdb)
			// Capacity is 1; well past it every request must still pass.
			for i := 0; i < 5; i++ {
				if rec := runLimited(t, mw); rec.Code != http.StatusOK {
					t.Fatalf("request %d blocked with status %d", i, rec.Code)
				}
			}
		})
	}
}
