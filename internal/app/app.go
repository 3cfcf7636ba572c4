package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/fx"

	"github.com/polkiloo/ridepoints/internal/config"
)

// Module wires the loyalty facade, the HTTP server and its lifecycle.
var Module = fx.Options(
	fx.Provide(
		NewLoyaltyFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

const corsMaxAgeSeconds = 300

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: withCORS(p.Config.CORSAllowedOrigins, p.Router),
	}
}

// withCORS lets browser clients on allowed origins call the API and read the
// Authorization header that carries the session token.
func withCORS(origins []string, next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding"},
		ExposedHeaders: []string{"Authorization"},
		MaxAge:         corsMaxAgeSeconds,
	})(next)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", p.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", p.Server.Addr, err)
			}
			p.Logger.Info("ridepoints listening", slog.String("addr", ln.Addr().String()))

			go func() {
				if err := p.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.Any("error", err))
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
				defer cancel()
			}

			if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			p.Logger.Info("ridepoints stopped")
			return nil
		},
	})
}
