package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// New lets one action through per interval, burst of one. A non-positive
// interval disables throttling.
func New(interval time.Duration) *Throttler {
	if interval <= 0 {
		return &Throttler{}
	}

	return &Throttler{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

type Throttler struct {
	limiter *rate.Limiter
}

// Do waits for its turn and runs action. It returns the context error without
// running action if ctx is done first.
func (t *Throttler) Do(ctx context.Context, action func() error) error {
	if t.limiter != nil {
		err := t.limiter.Wait(ctx)
		if err != nil {
			return err
		}
	}

	return action()
}
