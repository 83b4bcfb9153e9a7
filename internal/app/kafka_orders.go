package app

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/repository"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
	"github.com/mrsedghi/deliverino-sub000/internal/service/orders"
	"github.com/mrsedghi/deliverino-sub000/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the worker container: the Kafka order-event
// consumer plus the offer expiry sweep loop.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorkerContainer(ctx, connectDbWithRetry)
	if err != nil {
		log.Fatalf("failed to build worker container: %v", err)
	}
	return container
}

func buildWorkerContainer(
	ctx context.Context,
	dbConnect dbConnectFunc,
) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(
			d *dispatch.Dispatcher,
			ordersRepo *repository.OrderRepo,
			offersRepo *repository.OfferRepo,
			couriersRepo *repository.CourierRepo,
			logger logx.Logger,
		) *orders.Processor {
			return orders.NewProcessor(d, ordersRepo, offersRepo, couriersRepo, logger)
		},
		makeOrdersHandler,
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h, logger)
		},
	)
}

func makeOrdersHandler(p *orders.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		return p.Handle(ctx, event)
	}
}
