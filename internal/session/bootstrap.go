package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"landmark/internal/tracking"
)

var (
	ErrNotReady     = errors.New("tracking did not become ready")
	ErrStreamClosed = errors.New("pose stream closed")
)

// StatusFunc receives human readable progress while waiting.
type StatusFunc func(status string)

// AwaitReady consumes samples until one reports StateTracking and returns it.
// Each distinct state is reported through status. It gives up after timeout,
// on cancellation, or when samples is closed. A zero timeout waits
// indefinitely.
func AwaitReady(ctx context.Context, samples <-chan tracking.Sample, timeout time.Duration, status StatusFunc) (tracking.Sample, error) {
	if status == nil {
		status = func(string) {}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var last tracking.State
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return tracking.Sample{}, fmt.Errorf("%w after %s (last state %q)", ErrNotReady, timeout, last)
			}
			return tracking.Sample{}, ctx.Err()
		case s, ok := <-samples:
			if !ok {
				return tracking.Sample{}, ErrStreamClosed
			}
			if s.State != last {
				status(fmt.Sprintf("Earth Tracking State: %s", s.State))
				last = s.State
			}
			if s.Tracking() {
				status("Tracking established. Creating anchors...")
				return s, nil
			}
		}
	}
}
