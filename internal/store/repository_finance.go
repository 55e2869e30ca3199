// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// financeRepository is the PostgreSQL-backed implementation of
// [FinanceRepository].
type financeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFinanceRepository constructs a [FinanceRepository] backed by the
// provided database connection and logger.
func NewFinanceRepository(db *DB, logger *logger.Logger) FinanceRepository {
	logger.Debug().Msg("creating finance repository")
	return &financeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFinanceEntry inserts one expense or revenue line. A foreign key
// violation on client_id maps to [ErrClientNotFound].
func (r *financeRepository) CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFinanceEntry,
		entry.Kind, entry.AmountCents, entry.Category, entry.Description, entry.ClientID, entry.EntryDate)

	var saved models.FinanceEntry
	err := row.Scan(
		&saved.ID, &saved.Kind, &saved.AmountCents, &saved.Category,
		&saved.Description, &saved.ClientID, &saved.EntryDate, &saved.CreatedAt,
	)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.FinanceEntry{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*financeRepository.CreateFinanceEntry").Msg("error: scanning created entry")
		return models.FinanceEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListFinanceEntries returns all entries dated inside [from, to], oldest
// first.
func (r *financeRepository) ListFinanceEntries(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFinanceEntries, from, to)
	if err != nil {
		log.Err(err).Str("func", "*financeRepository.ListFinanceEntries").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.FinanceEntry
	for rows.Next() {
		var entry models.FinanceEntry
		err = rows.Scan(
			&entry.ID, &entry.Kind, &entry.AmountCents, &entry.Category,
			&entry.Description, &entry.ClientID, &entry.EntryDate, &entry.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*financeRepository.ListFinanceEntries").Msg("error: scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// DeleteFinanceEntry removes one entry. A miss maps to [ErrEntryNotFound].
func (r *financeRepository) DeleteFinanceEntry(ctx context.Context, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, deleteFinanceEntry, entryID)
	if err != nil {
		log.Err(err).Str("func", "*financeRepository.DeleteFinanceEntry").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
