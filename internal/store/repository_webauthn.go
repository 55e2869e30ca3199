// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// webAuthnRepository is the PostgreSQL-backed implementation of
// [WebAuthnRepository].
type webAuthnRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWebAuthnRepository constructs a [WebAuthnRepository] backed by the
// provided database connection and logger.
func NewWebAuthnRepository(db *DB, logger *logger.Logger) WebAuthnRepository {
	logger.Debug().Msg("creating webauthn repository")
	return &webAuthnRepository{
		db:     db,
		logger: logger,
	}
}

// WebAuthnCredentials returns all authenticator credentials registered by
// userID in registration order.
func (r *webAuthnRepository) WebAuthnCredentials(ctx context.Context, userID int64) ([]models.WebAuthnCredential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getWebAuthnCredentials, userID)
	if err != nil {
		log.Err(err).Str("func", "*webAuthnRepository.WebAuthnCredentials").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.WebAuthnCredential
	for rows.Next() {
		var credential models.WebAuthnCredential
		err = rows.Scan(
			&credential.ID, &credential.UserID, &credential.CredentialID,
			&credential.PublicKey, &credential.SignCount, &credential.AAGUID, &credential.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*webAuthnRepository.WebAuthnCredentials").Msg("error: scanning credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// AddWebAuthnCredential persists a freshly attested credential.
func (r *webAuthnRepository) AddWebAuthnCredential(ctx context.Context, credential *models.WebAuthnCredential) error {
	log := logger.FromContext(ctx)

	_, err := r.db.execRetry(ctx, addWebAuthnCredential,
		credential.UserID, credential.CredentialID, credential.PublicKey,
		credential.SignCount, credential.AAGUID)
	if err != nil {
		log.Err(err).Str("func", "*webAuthnRepository.AddWebAuthnCredential").Msg("error: executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpdateWebAuthnSignCount stores the authenticator's counter after a passing
// assertion.
func (r *webAuthnRepository) UpdateWebAuthnSignCount(ctx context.Context, userID int64, credentialID []byte, signCount uint32) error {
	log := logger.FromContext(ctx)

	_, err := r.db.execRetry(ctx, updateWebAuthnSignCount, userID, credentialID, signCount)
	if err != nil {
		log.Err(err).Str("func", "*webAuthnRepository.UpdateWebAuthnSignCount").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
