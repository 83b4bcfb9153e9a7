package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mrsedghi/deliverino-sub000/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.MustRun(container)
}
