package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
	"github.com/mrsedghi/deliverino-sub000/internal/transport/kafka"
)

// WorkerRunner runs the background worker: Kafka consumer plus sweep loop.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun blocks until the worker stops. Cancellation is a clean exit.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	loop *dispatch.Loop,
) error {
	defer closeWorker(pool, logger, consumer)

	logger.Info("dispatch worker started")

	// The sweep loop is the worker's reason to exist; the consumer is
	// optional and absent when Kafka is not configured.
	if consumer == nil {
		return loop.Run(ctx)
	}

	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(ctx) }()

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-loopDone
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, kafkaConsumer *kafka.Consumer) {
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
