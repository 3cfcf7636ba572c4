package test

import (
	"context"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

// AuthFacadeStub simulates sign-up, login and token parsing.
type AuthFacadeStub struct {
	SignUpFn func(context.Context, string, string, string) (string, error)
	LoginFn  func(context.Context, string, string) (string, error)
	ParseFn  func(string) (model.Identity, error)
}

func (s AuthFacadeStub) SignUp(ctx context.Context, email, password, referralCode string) (string, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, email, password, referralCode)
	}
	return "token", nil
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Identity{AccountID: 1, Email: "rider@example.com"}, nil
}

// RideFacadeStub simulates ride logging.
type RideFacadeStub struct {
	LogRideFn func(context.Context, int64, int64) (*model.Account, error)
}

func (s RideFacadeStub) LogRide(ctx context.Context, accountID, points int64) (*model.Account, error) {
	if s.LogRideFn != nil {
		return s.LogRideFn(ctx, accountID, points)
	}
	return &model.Account{ID: accountID, Points: points, Tier: model.TierForPoints(points)}, nil
}

// DashboardFacadeStub simulates the profile read.
type DashboardFacadeStub struct {
	DashboardFn func(context.Context, int64) (*model.Account, error)
}

func (s DashboardFacadeStub) Dashboard(ctx context.Context, accountID int64) (*model.Account, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, accountID)
	}
	return &model.Account{ID: accountID, Email: "rider@example.com", Tier: model.TierBronze}, nil
}

// HealthFacadeStub simulates the store ping.
type HealthFacadeStub struct {
	PingFn func(context.Context) error
}

func (s HealthFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// LoyaltyFacadeStub aggregates facade dependencies for HTTP layer tests.
type LoyaltyFacadeStub struct {
	AuthFacadeStub
	RideFacadeStub
	DashboardFacadeStub
	HealthFacadeStub
}
