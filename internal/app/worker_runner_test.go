package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
)

func TestWorkerRunner_MustRun_NoPanicOnNil(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_CancelledIsClean(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_RunsSweepLoopWithoutConsumer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	loop := dispatch.NewLoop(nopSweeper{}, time.Millisecond, logx.Nop())

	err := workerRun(ctx, nil, logx.Nop(), nil, loop)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
