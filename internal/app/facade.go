package app

import (
	"context"

	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// LoyaltyFacade is the single entry point the HTTP layer talks to.
type LoyaltyFacade struct {
	auth    *usecase.AuthUseCase
	rewards *usecase.RewardsUseCase
	health  HealthChecker
}

func NewLoyaltyFacade(auth *usecase.AuthUseCase, rewards *usecase.RewardsUseCase, health HealthChecker) *LoyaltyFacade {
	return &LoyaltyFacade{auth: auth, rewards: rewards, health: health}
}

func (f *LoyaltyFacade) SignUp(ctx context.Context, email, password, referralCode string) (string, error) {
	_, token, err := f.auth.SignUp(ctx, email, password, referralCode)
	return token, err
}

func (f *LoyaltyFacade) Login(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Login(ctx, email, password)
	return token, err
}

func (f *LoyaltyFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *LoyaltyFacade) LogRide(ctx context.Context, accountID, points int64) (*model.Account, error) {
	return f.rewards.LogRide(ctx, accountID, points)
}

func (f *LoyaltyFacade) Dashboard(ctx context.Context, accountID int64) (*model.Account, error) {
	return f.rewards.Dashboard(ctx, accountID)
}

func (f *LoyaltyFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
