package dispatch

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

// sweeper is the bulk entry point the loop drives on every tick.
type sweeper interface {
	SweepAll(ctx context.Context) error
}

// Loop drives the expiry scanner on a fixed interval. It owns no state
// beyond the ticker; stopping the context stops the loop.
type Loop struct {
	scanner  sweeper
	interval time.Duration
	logger   logx.Logger
}

// NewLoop creates a sweep loop. A non-positive interval falls back to one second.
func NewLoop(scanner sweeper, interval time.Duration, logger logx.Logger) *Loop {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Loop{scanner: scanner, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, sweeping all dispatching orders on
// every tick. Sweep errors are logged and do not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("sweep loop started", logx.Duration("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("sweep loop stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := l.scanner.SweepAll(ctx); err != nil && ctx.Err() == nil {
				l.logger.Error("sweep pass failed", logx.Err(err))
			}
		}
	}
}
