package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/domain/repository"
)

// AccountRepositoryStub stores accounts in-memory and mirrors the
// uniqueness and referral rules of the PostgreSQL store.
type AccountRepositoryStub struct {
	mu      sync.Mutex
	byEmail map[string]*model.Account
	byID    map[int64]*model.Account
	next    int64

	// Err, when set, is returned by every method.
	Err error
	// CreateFn overrides Create when set.
	CreateFn func(context.Context, repository.NewAccount) (*model.Account, error)
}

// NewAccountRepositoryStub constructs an empty stub repository.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		byEmail: make(map[string]*model.Account),
		byID:    make(map[int64]*model.Account),
		next:    1,
	}
}

func (s *AccountRepositoryStub) Create(ctx context.Context, in repository.NewAccount) (*model.Account, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[in.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	for _, a := range s.byID {
		if a.ReferralCode == in.ReferralCode {
			return nil, domainErrors.ErrReferralCodeTaken
		}
	}

	account := &model.Account{
		ID:           s.next,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Tier:         model.TierBronze,
		ReferralCode: in.ReferralCode,
		CreatedAt:    time.Now(),
	}
	if in.ReferrerCode != "" {
		for _, referrer := range s.byID {
			if referrer.ReferralCode == in.ReferrerCode {
				referrer.Points += in.ReferralBonus
				email := referrer.Email
				account.ReferredBy = &email
				break
			}
		}
	}

	s.next++
	s.byEmail[account.Email] = account
	s.byID[account.ID] = account
	return clone(account), nil
}

func (s *AccountRepositoryStub) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.byEmail[email]; ok {
		return clone(account), nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AccountRepositoryStub) GetByID(_ context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.byID[id]; ok {
		return clone(account), nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AccountRepositoryStub) AddRidePoints(_ context.Context, id, points int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.byID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	total, ok := model.AddPoints(account.Points, points)
	if !ok {
		return nil, domainErrors.ErrInvalidPoints
	}
	account.Points = total
	account.Tier = model.TierForPoints(account.Points)
	return clone(account), nil
}

func clone(a *model.Account) *model.Account {
	c := *a
	if a.ReferredBy != nil {
		by := *a.ReferredBy
		c.ReferredBy = &by
	}
	return &c
}

// HealthCheckerStub reports the configured error on HealthCheck.
type HealthCheckerStub struct {
	Err error
}

func (h HealthCheckerStub) HealthCheck(context.Context) error {
	return h.Err
}

var _ repository.AccountRepository = (*AccountRepositoryStub)(nil)
