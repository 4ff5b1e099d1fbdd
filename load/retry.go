package load

import (
	"context"
	"errors"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryDelays returns the first n default delays, doubling past the
// defaults. It returns nil for n <= 0.
func RetryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := DefaultRetryDelays()
	for len(delays) < n {
		delays = append(delays, 2*delays[len(delays)-1])
	}
	return delays[:n]
}

type fetchFunc func(ctx context.Context, url string) (string, error)

// fetchWithRetry calls fetch and, while it fails with a temporary error,
// retries after each of delays in turn.
func fetchWithRetry(ctx context.Context, url string, fetch fetchFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		text, err := fetch(ctx, url)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == len(delays) || !temporary(err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// temporary reports whether err declares itself worth retrying.
func temporary(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}
