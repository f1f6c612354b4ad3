package config

import "time"

// RateLimitConfig defines settings for the booking rate limiter.  The
// limiter is a Redis-backed token bucket keyed by client IP and route.
// When Enabled is false or no Redis client is available the middleware
// passes every request through.
type RateLimitConfig struct {
	Enabled        bool          // master switch
	Capacity       int           // bucket capacity (burst size)
	RefillInterval time.Duration // one token refilled per interval
	TTL            time.Duration // bucket key lifetime in Redis
	Prefix         string        // Redis key namespace
}

// LoadRateLimitConfig reads environment variables into a RateLimitConfig
// with sane defaults: 10 bookings burst, one token per 2s.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       getint("RATE_LIMIT_CAPACITY", 10),
		RefillInterval: getdur("RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
		TTL:            getdur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
