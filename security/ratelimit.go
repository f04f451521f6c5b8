package security

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outbound token endpoint calls using a token bucket.
// Authorization servers rate limit token exchanges aggressively; a client
// that retries callbacks in a loop can lock itself out without one.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond sustained
// calls with the given burst. A zero or negative rate disables limiting.
func NewRateLimiter(requestsPerSecond, burst int, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPerSecond <= 0 {
		return &RateLimiter{logger: logger}
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		logger:  logger,
	}
}

// Allow reports whether a call may proceed immediately.
func (rl *RateLimiter) Allow() bool {
	if rl == nil || rl.limiter == nil {
		return true
	}
	allowed := rl.limiter.Allow()
	if !allowed {
		rl.logger.Warn("token endpoint rate limit exceeded")
	}
	return allowed
}

// Wait blocks until a call may proceed or the context is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl == nil || rl.limiter == nil {
		return nil
	}
	return rl.limiter.Wait(ctx)
}
