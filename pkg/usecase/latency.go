package usecase

import (
	"context"
	"time"
)

// wait suspends the caller for the artificial delay, honoring context
// cancellation. A non-positive delay returns immediately.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
