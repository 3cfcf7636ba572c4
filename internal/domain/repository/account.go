package repository

import (
	"context"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

// NewAccount carries everything needed to persist a freshly signed-up account.
type NewAccount struct {
	Email        string
	PasswordHash string
	ReferralCode string
	// ReferrerCode is the code presented at sign-up; empty when none was given.
	ReferrerCode  string
	ReferralBonus int64
}

// AccountRepository describes persistence operations for accounts.
type AccountRepository interface {
	// Create inserts the account and, within the same transaction, credits the
	// account owning ReferrerCode. Unknown referrer codes are ignored.
	Create(ctx context.Context, account NewAccount) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	// AddRidePoints increments points and recomputes tier atomically. A total
	// that would overflow int64 is rejected with ErrInvalidPoints.
	AddRidePoints(ctx context.Context, id int64, points int64) (*model.Account, error)
}
