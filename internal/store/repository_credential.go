// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Every query is scoped by user_id so one user can
// never reach another user's records, whatever the record id.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential inserts a new record and returns it with server-assigned
// fields populated. The encrypted value arrives as an opaque blob; a foreign
// key violation on client_id maps to [ErrClientNotFound].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.UserID,
		credential.ClientID,
		credential.Name,
		credential.Type,
		credential.ValueKind,
		credential.EncryptedValue,
	)

	saved, err := scanCredential(row)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Credential{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: scanning created credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetCredential retrieves one record owned by userID. A miss maps to
// [ErrCredentialNotFound].
func (r *credentialRepository) GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getCredential, userID, credentialID)

	found, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error: scanning found credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListCredentials returns the records matching filter newest first, with
// the agency client display name joined in where one is linked.
func (r *credentialRepository) ListCredentials(ctx context.Context, filter CredentialFilter) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.Credential
	for rows.Next() {
		var credential models.Credential
		err = rows.Scan(
			&credential.ID,
			&credential.UserID,
			&credential.ClientID,
			&credential.ClientName,
			&credential.Name,
			&credential.Type,
			&credential.ValueKind,
			&credential.EncryptedValue,
			&credential.CreatedAt,
			&credential.UpdatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error: scanning credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// UpdateCredential rewrites a record owned by credential.UserID. When
// EncryptedValue is empty the stored ciphertext and its kind are left
// untouched and only the metadata columns change.
func (r *credentialRepository) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var row *sql.Row
	if credential.EncryptedValue == "" {
		row = r.db.QueryRowContext(ctx, updateCredentialMeta,
			credential.UserID,
			credential.ID,
			credential.ClientID,
			credential.Name,
			credential.Type,
		)
	} else {
		row = r.db.QueryRowContext(ctx, updateCredential,
			credential.UserID,
			credential.ID,
			credential.ClientID,
			credential.Name,
			credential.Type,
			credential.ValueKind,
			credential.EncryptedValue,
		)
	}

	updated, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Credential{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error: scanning updated credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteCredential removes one record owned by userID. A miss maps to
// [ErrCredentialNotFound].
func (r *credentialRepository) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, deleteCredential, userID, credentialID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func scanCredential(row *sql.Row) (models.Credential, error) {
	var credential models.Credential
	err := row.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.ClientID,
		&credential.Name,
		&credential.Type,
		&credential.ValueKind,
		&credential.EncryptedValue,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		return models.Credential{}, err
	}

	return credential, nil
}
