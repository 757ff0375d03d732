package repository

import (
	"context"
	"time"

	"loadvoice-synqall/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig controls Retrier.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Retrier re-runs database operations that failed with a transient error.
// A nil *Retrier runs every operation exactly once.
type Retrier struct {
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetrier creates a Retrier. retries may be nil.
func NewRetrier(logger logx.Logger, retries counter, cfg RetryConfig) *Retrier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Retrier{logger: logger, retries: retries, cfg: cfg}
}

// Do runs fn until it succeeds, fails permanently or attempts run out.
func (r *Retrier) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if r == nil {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts || !IsRetryable(err) {
			break
		}

		delay := backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("db retry",
			logx.String("op", op),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
