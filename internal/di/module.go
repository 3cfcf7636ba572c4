package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ridepoints/internal/app"
	"github.com/polkiloo/ridepoints/internal/config"
	"github.com/polkiloo/ridepoints/internal/logger"
	"github.com/polkiloo/ridepoints/internal/pkg/auth"
	"github.com/polkiloo/ridepoints/internal/server/http/handlers"
	"github.com/polkiloo/ridepoints/internal/server/http/router"
	"github.com/polkiloo/ridepoints/internal/storage/postgres"
	"github.com/polkiloo/ridepoints/internal/usecase"
)

// Module composes the full application graph. Extra options are appended
// last so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.LoyaltyFacade) handlers.LoyaltyFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
