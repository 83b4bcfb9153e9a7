package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/gateway/routing"
	"github.com/mrsedghi/deliverino-sub000/internal/http/handlers"
	"github.com/mrsedghi/deliverino-sub000/internal/http/router"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/notify"
	"github.com/mrsedghi/deliverino-sub000/internal/repository"
	"github.com/mrsedghi/deliverino-sub000/internal/service/courier"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
	"github.com/mrsedghi/deliverino-sub000/internal/service/intake"
	"github.com/mrsedghi/deliverino-sub000/internal/service/locator"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the API service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newMetrics,
		newNotifyGateway,
	)
}

func newNotifyGateway(cfg *config.Config, logger logx.Logger) notify.Gateway {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis address not set, notifications disabled")
		return notify.NopGateway{}
	}
	return notify.NewRedisGateway(notify.NewRedisClient(cfg.Redis.Addr))
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type dispatcherIn struct {
	dig.In

	Orders   *repository.OrderRepo
	Offers   *repository.OfferRepo
	Locator  *locator.Service
	Notifier notify.Gateway
	Cfg      *config.Config
	Logger   logx.Logger

	OffersCreated prometheus.Counter `name:"offers_created_total"`
	Escalations   prometheus.Counter `name:"dispatch_escalations_total"`
}

type scannerIn struct {
	dig.In

	Orders     *repository.OrderRepo
	Offers     *repository.OfferRepo
	Dispatcher *dispatch.Dispatcher
	Notifier   notify.Gateway
	Cfg        *config.Config
	Logger     logx.Logger

	OffersExpired prometheus.Counter `name:"offers_expired_total"`
	Escalations   prometheus.Counter `name:"dispatch_escalations_total"`
}

type quoterIn struct {
	dig.In

	Cfg    *config.Config
	Logger logx.Logger

	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func newQuoter(in quoterIn) (routing.Quoter, error) {
	gw, err := routing.NewMapsGateway(in.Cfg.MapsKey, in.Cfg.Fare)
	if err != nil {
		return nil, err
	}
	if gw == nil {
		// keyless deployment: estimate from haversine and the speed table
		return routing.NewStaticQuoter(in.Cfg.Fare, in.Cfg.Speed), nil
	}
	return routing.NewRetryingQuoter(gw, in.Logger, in.Retries, routing.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    time.Second,
	}), nil
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewCourierRepo,
		repository.NewOrderRepo,
		repository.NewOfferRepo,
		func(repo *repository.CourierRepo, cfg *config.Config) *locator.Service {
			return locator.NewService(repo, cfg.Speed)
		},
		newQuoter,
		func(in dispatcherIn) *dispatch.Dispatcher {
			return dispatch.NewDispatcher(
				in.Orders, in.Offers, in.Locator, in.Notifier,
				in.Cfg.Dispatch, in.Logger, in.OffersCreated, in.Escalations,
			)
		},
		func(in scannerIn) *dispatch.Scanner {
			return dispatch.NewScanner(
				in.Orders, in.Offers, in.Dispatcher, in.Notifier,
				in.Cfg.Dispatch, in.Logger, in.OffersExpired, in.Escalations,
			)
		},
		func(
			orders *repository.OrderRepo,
			offers *repository.OfferRepo,
			sc *dispatch.Scanner,
			gw notify.Gateway,
			logger logx.Logger,
		) *dispatch.Arbiter {
			return dispatch.NewArbiter(orders, offers, sc, gw, logger)
		},
		func(cfg *config.Config, sc *dispatch.Scanner, logger logx.Logger) *dispatch.Loop {
			return dispatch.NewLoop(sc, cfg.Dispatch.SweepInterval, logger)
		},
		func(repo *repository.CourierRepo) *courier.Service {
			return courier.NewService(repo, 3*time.Second)
		},
		func(
			orders *repository.OrderRepo,
			offers *repository.OfferRepo,
			q routing.Quoter,
			d *dispatch.Dispatcher,
			logger logx.Logger,
		) *intake.Service {
			return intake.NewService(orders, offers, q, d, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewOrderUsecase,
		handlers.NewArbiterUsecase,
		handlers.NewOrderHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
