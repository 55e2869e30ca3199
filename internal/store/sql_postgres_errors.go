// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification indicates whether a failed database operation should
// be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default classification: constraint violations,
	// data exceptions, syntax errors, and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks operations that may succeed on a second attempt, such
	// as transient connection loss or a deadlock rollback.
	Retryable
)

// ErrorClassifier classifies driver errors for the retry wrapper.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassifier] by inspecting the
// pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify attempts to unwrap err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Nil and non-PostgreSQL errors read as [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based
// on the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 40 — transaction rollback, serialization failure, deadlock
//   - Class 57 — cannot connect now (57P03)
//
// Everything else, notably data exceptions (class 22), constraint
// violations (class 23) and syntax errors (class 42), is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
