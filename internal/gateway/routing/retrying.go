package routing

import (
	"context"
	"errors"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes the retry behavior of RetryingQuoter.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingQuoter decorates a Quoter with capped exponential backoff.
type RetryingQuoter struct {
	next    Quoter
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingQuoter wraps next with retries. Returns nil when next is nil.
func NewRetryingQuoter(next Quoter, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingQuoter {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingQuoter{next: next, logger: logger, retries: retries, cfg: cfg, sleep: time.Sleep}
}

// Quote retries the wrapped quoter until it succeeds, the attempts run out,
// or the context ends.
func (g *RetryingQuoter) Quote(ctx context.Context, origin, dest domain.Coordinate, transport domain.CourierTransportType) (Quote, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		q, err := g.next.Quote(ctx, origin, dest, transport)
		if err == nil {
			return q, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("routing gateway retry",
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return Quote{}, lastErr
}

func isRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
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
