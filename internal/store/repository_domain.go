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

// domainRepository is the PostgreSQL-backed implementation of
// [DomainRepository].
type domainRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDomainRepository constructs a [DomainRepository] backed by the provided
// database connection and logger.
func NewDomainRepository(db *DB, logger *logger.Logger) DomainRepository {
	logger.Debug().Msg("creating domain repository")
	return &domainRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDomain inserts a new tracked domain. A unique_violation on the name
// maps to [ErrDomainAlreadyExists], a foreign key violation on client_id to
// [ErrClientNotFound].
func (r *domainRepository) CreateDomain(ctx context.Context, domain models.Domain) (models.Domain, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDomain,
		domain.Name, domain.Registrar, domain.ClientID, domain.ExpiresAt, domain.AutoRenew)

	var saved models.Domain
	err := row.Scan(
		&saved.ID, &saved.Name, &saved.Registrar, &saved.ClientID,
		&saved.ExpiresAt, &saved.AutoRenew, &saved.CheckedAt, &saved.CreatedAt,
	)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Domain{}, ErrDomainAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Domain{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*domainRepository.CreateDomain").Msg("error: scanning created domain")
		return models.Domain{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListDomains returns all tracked domains, soonest expiry first.
func (r *domainRepository) ListDomains(ctx context.Context) ([]models.Domain, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDomains)
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.ListDomains").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var domains []models.Domain
	for rows.Next() {
		var domain models.Domain
		err = rows.Scan(
			&domain.ID, &domain.Name, &domain.Registrar, &domain.ClientID,
			&domain.ExpiresAt, &domain.AutoRenew, &domain.CheckedAt, &domain.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*domainRepository.ListDomains").Msg("error: scanning domain row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		domains = append(domains, domain)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return domains, nil
}

// UpdateDomainExpiry records the result of an expiry probe. A miss maps to
// [ErrDomainNotFound].
func (r *domainRepository) UpdateDomainExpiry(ctx context.Context, domainID int64, registrar string, expiresAt *time.Time, checkedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, updateDomainExpiry, domainID, registrar, expiresAt, checkedAt)
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.UpdateDomainExpiry").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrDomainNotFound
	}

	return nil
}

// DeleteDomain stops tracking a domain. A miss maps to [ErrDomainNotFound].
func (r *domainRepository) DeleteDomain(ctx context.Context, domainID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, deleteDomain, domainID)
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.DeleteDomain").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrDomainNotFound
	}

	return nil
}
