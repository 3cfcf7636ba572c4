package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/domain/repository"
)

// RewardsUseCase records rides and exposes account standing.
type RewardsUseCase struct {
	accounts repository.AccountRepository
}

// NewRewardsUseCase constructs RewardsUseCase.
func NewRewardsUseCase(accounts repository.AccountRepository) *RewardsUseCase {
	return &RewardsUseCase{accounts: accounts}
}

// LogRide adds points to the account and returns the updated totals and tier.
func (u *RewardsUseCase) LogRide(ctx context.Context, accountID, points int64) (*model.Account, error) {
	if points < 1 {
		return nil, domainErrors.ErrInvalidPoints
	}
	return u.accounts.AddRidePoints(ctx, accountID, points)
}

// Dashboard returns the account profile.
func (u *RewardsUseCase) Dashboard(ctx context.Context, accountID int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, accountID)
}
