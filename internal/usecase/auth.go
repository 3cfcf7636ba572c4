package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/domain/repository"
	pkgAuth "github.com/polkiloo/ridepoints/internal/pkg/auth"
)

const maxReferralCodeAttempts = 5

// AuthUseCase handles account sign-up, login and token management.
type AuthUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	newCode  func() string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, tokens: strategy, newCode: NewReferralCode}
}

// SignUp creates an account, credits the referrer owning referralCode and
// returns a session token for the new account.
func (u *AuthUseCase) SignUp(ctx context.Context, email, password, referralCode string) (*model.Account, string, error) {
	email = strings.TrimSpace(email)
	referralCode = strings.TrimSpace(referralCode)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidInput
	}

	if _, err := u.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	account, err := u.create(ctx, repository.NewAccount{
		Email:         email,
		PasswordHash:  hash,
		ReferrerCode:  referralCode,
		ReferralBonus: model.ReferralBonus,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (u *AuthUseCase) create(ctx context.Context, in repository.NewAccount) (*model.Account, error) {
	for attempt := 0; attempt < maxReferralCodeAttempts; attempt++ {
		in.ReferralCode = u.newCode()
		account, err := u.accounts.Create(ctx, in)
		if errors.Is(err, domainErrors.ErrReferralCodeTaken) {
			continue
		}
		return account, err
	}
	return nil, fmt.Errorf("allocate referral code after %d attempts: %w", maxReferralCodeAttempts, domainErrors.ErrReferralCodeTaken)
}

// Login verifies credentials and returns a fresh session token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.Account, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidInput
	}

	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidPassword
	}

	token, err := u.issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// ParseToken extracts the identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AuthUseCase) issue(account *model.Account) (string, error) {
	return u.tokens.IssueToken(model.Identity{AccountID: account.ID, Email: account.Email})
}
