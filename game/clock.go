package game

import (
	"context"
	"time"
)

// Clock suspends the driver at its pause points. Sleep returns early with
// ctx.Err() when ctx is cancelled.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock waits on wall-clock time.
type RealClock struct{}

// Sleep implements Clock.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
