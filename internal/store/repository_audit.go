// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository]. Rows are append-only.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// AppendAuditEvent inserts one audit row. Transient failures are retried so
// a flaky connection does not drop trail entries.
func (r *auditRepository) AppendAuditEvent(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	details := event.Details
	if details == nil {
		details = map[string]string{}
	}
	rawDetails, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode audit details: %w", err)
	}

	_, err = r.db.execRetry(ctx, appendAuditEvent,
		event.UserID, event.Action, event.TargetType, event.TargetID, rawDetails)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendAuditEvent").
			Str("action", event.Action).
			Msg("error: executing audit insert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListAuditEvents returns the user's newest events first, capped at limit.
func (r *auditRepository) ListAuditEvents(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, listAuditEvents, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListAuditEvents").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.AuditEvent
	for rows.Next() {
		var event models.AuditEvent
		var rawDetails []byte
		err = rows.Scan(
			&event.ID, &event.UserID, &event.Action,
			&event.TargetType, &event.TargetID, &rawDetails, &event.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*auditRepository.ListAuditEvents").Msg("error: scanning audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(rawDetails) > 0 {
			if err = json.Unmarshal(rawDetails, &event.Details); err != nil {
				return nil, fmt.Errorf("decode audit details: %w", err)
			}
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
