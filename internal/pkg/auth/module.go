package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ridepoints/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type authParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p authParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

func newTokenStrategy(p authParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL}
	if p.Config.TokenFormat == config.TokenFormatPaseto {
		strategy, err := NewPasetoStrategy(p.Config.JWTSecret, opts)
		if err != nil {
			return nil, err
		}
		return strategy, nil
	}
	return NewJWTStrategy(p.Config.JWTSecret, opts), nil
}
