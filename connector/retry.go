package connector

import (
	"context"
	"fmt"
	"time"
)

// retryConnect runs connect up to cfg.MaxRetries times with exponential
// backoff, bailing out early when ctx is done. There is no sleep after the
// final attempt.
func retryConnect(ctx context.Context, cfg RetryConfig, connect func(context.Context) (Connection, error)) (Connection, error) {
	attempts := cfg.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}
	delay := cfg.BaseDelay
	if delay <= 0 {
		delay = time.Second
	}
	backoff := cfg.Backoff
	if backoff < 1 {
		backoff = 2
	}

	var err error
	for i := 0; i < attempts; i++ {
		var conn Connection
		conn, err = connect(ctx)
		if err == nil {
			return conn, nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * backoff)
			if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
		}
	}
	return nil, fmt.Errorf("connect failed after %d attempts: %w", attempts, err)
}
