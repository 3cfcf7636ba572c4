package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/ridepoints/internal/domain/repository"
)

// pgxPool is the part of *pgxpool.Pool the account store relies on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

const (
	pingTimeout = 2 * time.Second

	accountsSchema = `CREATE TABLE IF NOT EXISTS accounts (
    id BIGSERIAL PRIMARY KEY,
    email TEXT NOT NULL CONSTRAINT accounts_email_key UNIQUE,
    password_hash TEXT NOT NULL,
    points BIGINT NOT NULL DEFAULT 0 CHECK (points >= 0),
    tier TEXT NOT NULL DEFAULT 'Bronze' CHECK (tier IN ('Bronze', 'Silver', 'Gold')),
    referral_code TEXT NOT NULL CONSTRAINT accounts_referral_code_key UNIQUE,
    referred_by TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
)

// Storage owns the connection pool behind the account repository.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New opens a pool for dsn and creates the accounts table when missing.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	s := &Storage{pool: pool, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres storage ready",
		slog.String("host", poolCfg.ConnConfig.Host),
		slog.String("database", poolCfg.ConnConfig.Database),
	)
	return s, nil
}

// Close releases the pool. It is safe on a zero Storage.
func (s *Storage) Close() {
	if s.pool == nil {
		return
	}
	s.pool.Close()
}

func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, accountsSchema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// withTx runs fn in a transaction with the server default isolation. It commits when
// fn returns nil and rolls back otherwise; fn's error is always returned as is.
func (s *Storage) withTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err == nil {
			if cErr := tx.Commit(ctx); cErr != nil {
				err = fmt.Errorf("commit tx: %w", cErr)
			}
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Warn("rollback failed", slog.Any("error", rbErr))
		}
	}()

	return fn(tx)
}

// HealthCheck pings the database with a short deadline.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}
