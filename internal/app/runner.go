package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/http/pprofserver"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
)

// MustRun starts the HTTP server and the sweep loop using the provided DI container.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		server *http.Server,
		ctx context.Context,
		pool *pgxpool.Pool,
		cfg *config.Config,
		loop *dispatch.Loop,
		logger logx.Logger,
	) error {
		loopCtx, stopLoop := context.WithCancel(ctx)
		defer stopLoop()

		startServer(server, logger)
		startPprof(cfg, logger)
		go func() {
			_ = loop.Run(loopCtx)
		}()

		waitForShutdown(ctx, logger)
		stopLoop()
		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(pool, server, logger)
		return nil
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("dispatcher listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func startPprof(cfg *config.Config, logger logx.Logger) {
	if cfg.Pprof.Addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              cfg.Pprof.Addr,
		Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof listen error", logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down dispatcher")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
