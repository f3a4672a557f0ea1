// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every runs fn immediately and then once per interval until the context is
// canceled. It returns the context's error.
func Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) error {
	for {
		fn(ctx)
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
