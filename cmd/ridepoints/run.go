package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/ridepoints/internal/config"
)

func run(ctx context.Context, app *fx.App, cfg *config.Config) {
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start application: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop application: %v\n", err)
		os.Exit(1)
	}
}

const fallbackStopTimeout = 15 * time.Second

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.ShutdownTimeout <= 0 {
		return fallbackStopTimeout
	}
	// http.Server shutdown runs inside the stop hooks and needs its own budget.
	return cfg.ShutdownTimeout + 5*time.Second
}
