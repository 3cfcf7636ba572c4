package postgres

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/domain/repository"
)

const (
	creditReferrerPattern = "UPDATE accounts SET points = points"
	insertAccountPattern  = "INSERT INTO accounts"
	selectByEmailPattern  = "SELECT id, email, password_hash, points, tier, referral_code, referred_by, created_at FROM accounts WHERE email="
	selectByIDPattern     = "SELECT id, email, password_hash, points, tier, referral_code, referred_by, created_at FROM accounts WHERE id="
	lockPointsPattern     = "SELECT points FROM accounts WHERE id"
	updatePointsPattern   = "UPDATE accounts SET points="
)

var accountRowColumns = []string{"id", "email", "password_hash", "points", "tier", "referral_code", "referred_by", "created_at"}

func newAccountRepo(t *testing.T) (*accountRepository, pgxmockv3.PgxPoolIface) {
	t.Helper()
	storage, mock := newMockStorage(t)
	return &accountRepository{storage: storage}, mock
}

func TestAccountRepositoryCreateWithoutReferral(t *testing.T) {
	repo, mock := newAccountRepo(t)
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(insertAccountPattern).
		WithArgs("rider@example.com", "hash", int64(0), "Bronze", "ABCDEF1234", (*string)(nil)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))
	mock.ExpectCommit()

	account, err := repo.Create(context.Background(), repository.NewAccount{
		Email:         "rider@example.com",
		PasswordHash:  "hash",
		ReferralCode:  "ABCDEF1234",
		ReferralBonus: model.ReferralBonus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != 1 || account.Email != "rider@example.com" || account.Tier != model.TierBronze {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.ReferredBy != nil {
		t.Fatalf("expected no referrer, got %q", *account.ReferredBy)
	}
	if !account.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created at: %v", account.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryCreateWithReferral(t *testing.T) {
	repo, mock := newAccountRepo(t)
	referrer := "referrer@example.com"

	mock.ExpectBegin()
	mock.ExpectQuery(creditReferrerPattern).
		WithArgs(int64(10), "REFCODE001").
		WillReturnRows(pgxmockv3.NewRows([]string{"email"}).AddRow(referrer))
	mock.ExpectQuery(insertAccountPattern).
		WithArgs("new@example.com", "hash", int64(0), "Bronze", "NEWCODE001", &referrer).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))
	mock.ExpectCommit()

	account, err := repo.Create(context.Background(), repository.NewAccount{
		Email:         "new@example.com",
		PasswordHash:  "hash",
		ReferralCode:  "NEWCODE001",
		ReferrerCode:  "REFCODE001",
		ReferralBonus: model.ReferralBonus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ReferredBy == nil || *account.ReferredBy != referrer {
		t.Fatalf("expected referred by %q, got %v", referrer, account.ReferredBy)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryCreateUnknownReferral(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(creditReferrerPattern).
		WithArgs(int64(10), "UNKNOWN").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(insertAccountPattern).
		WithArgs("new@example.com", "hash", int64(0), "Bronze", "NEWCODE001", (*string)(nil)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))
	mock.ExpectCommit()

	account, err := repo.Create(context.Background(), repository.NewAccount{
		Email:         "new@example.com",
		PasswordHash:  "hash",
		ReferralCode:  "NEWCODE001",
		ReferrerCode:  "UNKNOWN",
		ReferralBonus: model.ReferralBonus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ReferredBy != nil {
		t.Fatalf("expected no referrer, got %q", *account.ReferredBy)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryCreateErrors(t *testing.T) {
	in := repository.NewAccount{
		Email:         "dup@example.com",
		PasswordHash:  "hash",
		ReferralCode:  "CODE",
		ReferrerCode:  "REF",
		ReferralBonus: model.ReferralBonus,
	}

	cases := []struct {
		name      string
		setup     func(mock pgxmockv3.PgxPoolIface)
		want      error
		wantOther bool
	}{
		{
			name: "duplicate email rolls back referral credit",
			setup: func(mock pgxmockv3.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(creditReferrerPattern).WillReturnRows(pgxmockv3.NewRows([]string{"email"}).AddRow("r@example.com"))
				mock.ExpectQuery(insertAccountPattern).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})
				mock.ExpectRollback()
			},
			want: domainErrors.ErrAlreadyExists,
		},
		{
			name: "referral code collision",
			setup: func(mock pgxmockv3.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(creditReferrerPattern).WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(insertAccountPattern).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_referral_code_key"})
				mock.ExpectRollback()
			},
			want: domainErrors.ErrReferralCodeTaken,
		},
		{
			name: "referrer update failure",
			setup: func(mock pgxmockv3.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(creditReferrerPattern).WillReturnError(errors.New("boom"))
				mock.ExpectRollback()
			},
			wantOther: true,
		},
		{
			name: "other pg error",
			setup: func(mock pgxmockv3.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(creditReferrerPattern).WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(insertAccountPattern).WillReturnError(&pgconn.PgError{Code: "23502"})
				mock.ExpectRollback()
			},
			wantOther: true,
		},
		{
			name: "begin failure",
			setup: func(mock pgxmockv3.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("begin"))
			},
			wantOther: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newAccountRepo(t)
			tc.setup(mock)

			_, err := repo.Create(context.Background(), in)
			switch {
			case tc.wantOther:
				if err == nil || errors.Is(err, domainErrors.ErrAlreadyExists) || errors.Is(err, domainErrors.ErrReferralCodeTaken) {
					t.Fatalf("expected unmapped error, got %v", err)
				}
			case !errors.Is(err, tc.want):
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations not met: %v", err)
			}
		})
	}
}

func TestAccountRepositoryGet(t *testing.T) {
	repo, mock := newAccountRepo(t)
	createdAt := time.Now()
	referrer := "ref@example.com"

	mock.ExpectQuery(selectByEmailPattern).WithArgs("rider@example.com").WillReturnRows(
		pgxmockv3.NewRows(accountRowColumns).
			AddRow(int64(1), "rider@example.com", "hash", int64(55), "Silver", "CODE", &referrer, createdAt))
	account, err := repo.GetByEmail(context.Background(), "rider@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Points != 55 || account.Tier != model.TierSilver || account.ReferredBy == nil || *account.ReferredBy != referrer {
		t.Fatalf("unexpected account: %+v", account)
	}

	mock.ExpectQuery(selectByEmailPattern).WithArgs("missing@example.com").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByEmail(context.Background(), "missing@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery(selectByEmailPattern).WithArgs("err@example.com").WillReturnError(errors.New("fail"))
	if _, err := repo.GetByEmail(context.Background(), "err@example.com"); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	mock.ExpectQuery(selectByIDPattern).WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(accountRowColumns).
			AddRow(int64(1), "rider@example.com", "hash", int64(0), "Bronze", "CODE", nil, createdAt))
	account, err = repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Email != "rider@example.com" || account.Tier != model.TierBronze {
		t.Fatalf("unexpected account: %+v", account)
	}

	mock.ExpectQuery(selectByIDPattern).WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryAddRidePoints(t *testing.T) {
	repo, mock := newAccountRepo(t)
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(lockPointsPattern).WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"points"}).AddRow(int64(30)))
	mock.ExpectQuery(updatePointsPattern).WithArgs(int64(1), int64(55), "Silver").
		WillReturnRows(pgxmockv3.NewRows(accountRowColumns).
			AddRow(int64(1), "rider@example.com", "hash", int64(55), "Silver", "CODE", nil, createdAt))
	mock.ExpectCommit()

	account, err := repo.AddRidePoints(context.Background(), 1, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Points != 55 || account.Tier != model.TierSilver {
		t.Fatalf("unexpected account: %+v", account)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockPointsPattern).WithArgs(int64(2)).
		WillReturnRows(pgxmockv3.NewRows([]string{"points"}).AddRow(int64(90)))
	mock.ExpectQuery(updatePointsPattern).WithArgs(int64(2), int64(100), "Gold").
		WillReturnRows(pgxmockv3.NewRows(accountRowColumns).
			AddRow(int64(2), "gold@example.com", "hash", int64(100), "Gold", "CODE2", nil, createdAt))
	mock.ExpectCommit()

	account, err = repo.AddRidePoints(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Tier != model.TierGold {
		t.Fatalf("expected gold, got %s", account.Tier)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockPointsPattern).WithArgs(int64(3)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()
	if _, err := repo.AddRidePoints(context.Background(), 3, 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockPointsPattern).WithArgs(int64(4)).
		WillReturnRows(pgxmockv3.NewRows([]string{"points"}).AddRow(int64(0)))
	mock.ExpectQuery(updatePointsPattern).WithArgs(int64(4), int64(5), "Bronze").WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if _, err := repo.AddRidePoints(context.Background(), 4, 5); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected update error, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockPointsPattern).WithArgs(int64(5)).
		WillReturnRows(pgxmockv3.NewRows([]string{"points"}).AddRow(int64(math.MaxInt64 - 9)))
	mock.ExpectRollback()
	if _, err := repo.AddRidePoints(context.Background(), 5, 10); !errors.Is(err, domainErrors.ErrInvalidPoints) {
		t.Fatalf("expected invalid points on overflow, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
