package handlers

import (
	"context"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, email, password, referralCode string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (model.Identity, error)
}

// RideFacade records rides for the authenticated account.
type RideFacade interface {
	LogRide(ctx context.Context, accountID, points int64) (*model.Account, error)
}

// DashboardFacade reads the authenticated account profile.
type DashboardFacade interface {
	Dashboard(ctx context.Context, accountID int64) (*model.Account, error)
}

// HealthFacade checks the backing store.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	AuthFacade
	RideFacade
	DashboardFacade
	HealthFacade
}
