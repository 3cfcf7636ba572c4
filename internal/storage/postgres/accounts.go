package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/domain/repository"
)

const (
	uniqueViolation = "23505"

	emailConstraint        = "accounts_email_key"
	referralCodeConstraint = "accounts_referral_code_key"
)

const (
	accountColumns = `id, email, password_hash, points, tier, referral_code, referred_by, created_at`

	creditReferrerQuery = `UPDATE accounts SET points = points + $1
                           WHERE referral_code = $2
                           RETURNING email`
	insertAccountQuery = `INSERT INTO accounts (email, password_hash, points, tier, referral_code, referred_by)
                          VALUES ($1, $2, $3, $4, $5, $6)
                          RETURNING id, created_at`
	selectByEmailQuery = `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1`
	selectByIDQuery    = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	lockPointsQuery    = `SELECT points FROM accounts WHERE id=$1 FOR UPDATE`
	updatePointsQuery  = `UPDATE accounts SET points=$2, tier=$3 WHERE id=$1 RETURNING ` + accountColumns
)

type accountRepository struct {
	storage *Storage
}

var _ repository.AccountRepository = (*accountRepository)(nil)

// Create credits the referrer (if any) and inserts the account in one transaction.
func (r *accountRepository) Create(ctx context.Context, in repository.NewAccount) (*model.Account, error) {
	account := &model.Account{
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Points:       0,
		Tier:         model.TierForPoints(0),
		ReferralCode: in.ReferralCode,
	}

	err := r.storage.withTx(ctx, func(tx pgx.Tx) error {
		if in.ReferrerCode != "" {
			var referrerEmail string
			err := tx.QueryRow(ctx, creditReferrerQuery, in.ReferralBonus, in.ReferrerCode).Scan(&referrerEmail)
			switch {
			case errors.Is(err, pgx.ErrNoRows):
			case err != nil:
				return fmt.Errorf("credit referrer: %w", err)
			default:
				account.ReferredBy = &referrerEmail
			}
		}

		return tx.QueryRow(ctx, insertAccountQuery,
			account.Email, account.PasswordHash, account.Points, string(account.Tier), account.ReferralCode, account.ReferredBy,
		).Scan(&account.ID, &account.CreatedAt)
	})
	if err != nil {
		return nil, mapConstraintError(err)
	}

	if account.ReferredBy != nil {
		r.storage.logger.Info("referral credited",
			slog.String("referrer", *account.ReferredBy),
			slog.Int64("bonus", in.ReferralBonus),
		)
	}
	return account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.getOne(ctx, selectByEmailQuery, email)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.getOne(ctx, selectByIDQuery, id)
}

// AddRidePoints adds points under a row lock and persists the recomputed tier.
func (r *accountRepository) AddRidePoints(ctx context.Context, id, points int64) (*model.Account, error) {
	var account *model.Account
	err := r.storage.withTx(ctx, func(tx pgx.Tx) error {
		var current int64
		if err := tx.QueryRow(ctx, lockPointsQuery, id).Scan(&current); err != nil {
			return err
		}

		total, ok := model.AddPoints(current, points)
		if !ok {
			return domainErrors.ErrInvalidPoints
		}
		updated, err := scanAccount(tx.QueryRow(ctx, updatePointsQuery, id, total, string(model.TierForPoints(total))))
		if err != nil {
			return err
		}
		account = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) getOne(ctx context.Context, query string, arg any) (*model.Account, error) {
	account, err := scanAccount(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	var (
		a    model.Account
		tier string
	)
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Points, &tier, &a.ReferralCode, &a.ReferredBy, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Tier = model.Tier(tier)
	return &a, nil
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case referralCodeConstraint:
		return domainErrors.ErrReferralCodeTaken
	default:
		return domainErrors.ErrAlreadyExists
	}
}
