package gateway

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle enforces a fixed minimum spacing between upstream calls to
// stay under the public rate limit. The initial token is drained at
// construction so the very first call pays the full delay too.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle with the given inter-call delay
func NewThrottle(delay time.Duration) *Throttle {
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.Allow()
	return &Throttle{limiter: limiter}
}

// Wait blocks until the delay since the previous call has elapsed, or
// ctx is done
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
