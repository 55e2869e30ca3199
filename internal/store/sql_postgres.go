// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/migrations"
)

// DB wraps the sql connection pool together with the retry classifier used
// by write paths.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnectPostgres opens and pings a PostgreSQL connection through the pgx
// stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:              conn,
		logger:          log,
		errorClassifier: NewPostgresErrorClassifier(),
	}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execRetry runs a DML statement, retrying transient failures up to three
// times with a short backoff. Non-retryable errors return immediately.
func (db *DB) execRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	var err error

	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}

		result, err = db.ExecContext(ctx, query, args...)
		if err == nil {
			return result, nil
		}
		if db.errorClassifier == nil || db.errorClassifier.Classify(err) != Retryable {
			return nil, err
		}

		db.logger.Warn().Err(err).
			Str("func", "*DB.execRetry").
			Int("attempt", attempt+1).
			Msg("retrying transient database error")
	}

	return nil, err
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns the empty string for non-postgres failures.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
