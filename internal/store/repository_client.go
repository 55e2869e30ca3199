// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository].
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClient inserts a new agency client and returns it with
// server-assigned fields populated.
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClient, client.Company, client.ContactName, client.Email, client.Status)

	saved, err := scanClient(row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error: scanning created client")
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetClient retrieves one agency client. A miss maps to [ErrClientNotFound].
func (r *clientRepository) GetClient(ctx context.Context, clientID int64) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getClient, clientID)

	found, err := scanClient(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*clientRepository.GetClient").Msg("error: scanning found client")
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListClients returns agency clients in company order, narrowed to status
// when one is given.
func (r *clientRepository) ListClients(ctx context.Context, status models.ClientStatus) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	var err error
	if status == "" {
		rows, err = r.db.QueryContext(ctx, listClients)
	} else {
		rows, err = r.db.QueryContext(ctx, listClientsByStatus, status)
	}
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		client, scanErr := scanClient(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*clientRepository.ListClients").Msg("error: scanning client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}

// UpdateClient rewrites an agency client. A miss maps to [ErrClientNotFound].
func (r *clientRepository) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateClient, client.ID, client.Company, client.ContactName, client.Email, client.Status)

	updated, err := scanClient(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*clientRepository.UpdateClient").Msg("error: scanning updated client")
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteClient removes an agency client. Credential records linked to it
// stay behind with their client reference cleared. A miss maps to
// [ErrClientNotFound].
func (r *clientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, deleteClient, clientID)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

func scanClient(scan func(dest ...any) error) (models.Client, error) {
	var client models.Client
	err := scan(
		&client.ID,
		&client.Company,
		&client.ContactName,
		&client.Email,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return models.Client{}, err
	}

	return client, nil
}
