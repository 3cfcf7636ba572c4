package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/ridepoints/internal/config"
	"github.com/polkiloo/ridepoints/internal/di"
	"github.com/polkiloo/ridepoints/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg *config.Config
	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.WithLogger(logger.NewFxEventLogger),
		di.Module(),
		fx.Populate(&cfg),
	)

	run(ctx, app, cfg)
}
