package db

import (
	"context"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

// InitSchema creates the tables on startup so a fresh database works
// without a separate migration step.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sms_records (
			id BIGSERIAL PRIMARY KEY,
			uid TEXT NOT NULL,
			sms TEXT NOT NULL,
			sender TEXT,
			category TEXT NOT NULL,
			category_source TEXT NOT NULL,
			amount NUMERIC,
			txn_type TEXT NOT NULL,
			mode TEXT NOT NULL,
			ref_no TEXT,
			account TEXT,
			date TEXT,
			balance NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sms_records_uid_created_at
			ON sms_records (uid, created_at)`,
		`CREATE TABLE IF NOT EXISTS bills (
			id UUID PRIMARY KEY,
			uid TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			due_date TIMESTAMPTZ NOT NULL,
			amount NUMERIC NOT NULL,
			status TEXT NOT NULL DEFAULT 'Unpaid',
			sms_sender TEXT,
			sms_body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id BIGSERIAL PRIMARY KEY,
			uid TEXT NOT NULL,
			name TEXT NOT NULL,
			cap NUMERIC NOT NULL,
			currency TEXT NOT NULL DEFAULT 'INR',
			period TEXT NOT NULL DEFAULT 'monthly',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
