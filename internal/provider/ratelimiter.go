package provider

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket for outbound API calls.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows bursts of maxTokens calls and refills one token every refillInterval.
func NewRateLimiter(maxTokens int, refillInterval time.Duration) *RateLimiter {
	if maxTokens <= 0 {
		maxTokens = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Every(refillInterval), maxTokens)}
}

// Wait blocks until a token is available or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
