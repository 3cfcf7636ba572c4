package model

import (
	"math"
	"time"
)

// ReferralBonus is the number of points credited to a referrer per sign-up.
const ReferralBonus int64 = 10

// Account represents a registered member of the loyalty program.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Points       int64
	Tier         Tier
	ReferralCode string
	ReferredBy   *string
	CreatedAt    time.Time
}

// Identity is the authenticated subject carried by session tokens.
type Identity struct {
	AccountID int64
	Email     string
}

// AddPoints returns current+delta. It reports false when delta is not
// positive or the total would not fit in int64.
func AddPoints(current, delta int64) (int64, bool) {
	if delta < 1 || delta > math.MaxInt64-current {
		return current, false
	}
	return current + delta, true
}
