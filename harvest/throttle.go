package harvest

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/pantry"
	"golang.org/x/time/rate"
)

// DefaultDelay is the pause after every retrieval attempt.
const DefaultDelay = 500 * time.Millisecond

var (
	_ pantry.Throttle = (*FixedDelay)(nil)
	_ pantry.Throttle = (*RateThrottle)(nil)
)

// FixedDelay sleeps for a fixed duration after every attempt, whatever its
// outcome. It is a courtesy throttle, not a backoff.
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a FixedDelay. A non-positive delay disables pausing.
func NewFixedDelay(d time.Duration) *FixedDelay {
	return &FixedDelay{delay: d}
}

// Pause blocks for the configured delay or until the context is canceled.
func (f *FixedDelay) Pause(ctx context.Context, _ string) error {
	if f.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RateThrottle spaces attempts per host using token buckets, so concurrent
// workers hitting the same site share one budget while different sites
// proceed independently.
type RateThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewRateThrottle creates a RateThrottle allowing rps attempts per second
// per host, with a burst of 1.
func NewRateThrottle(rps float64) *RateThrottle {
	return &RateThrottle{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Pause consumes a token from the host's bucket, waiting for one if needed.
// The first attempt to a host passes immediately.
func (r *RateThrottle) Pause(ctx context.Context, host string) error {
	r.mu.Lock()
	limiter, ok := r.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(r.rps), 1)
		r.limiters[host] = limiter
	}
	r.mu.Unlock()

	return limiter.Wait(ctx)
}
