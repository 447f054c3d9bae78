package cvgen

import (
	"context"
	"time"
)

// Waiter stands in for the latency of an external generation call.
type Waiter interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits for a constant duration, or until ctx ends.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
