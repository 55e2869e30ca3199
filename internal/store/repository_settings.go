// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// settingsRepository stores the vault security settings as one key inside
// the users.metadata JSONB bag. The bag is read and written whole so the
// server stays agnostic about other keys living alongside.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] over the users
// table's metadata column.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetVaultSettings returns the stored vault security settings, or nil when
// the user has never configured vault protection.
func (r *settingsRepository) GetVaultSettings(ctx context.Context, userID int64) (*models.VaultSettings, error) {
	metadata, err := r.readMetadata(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, ok := metadata[models.VaultSettingsMetadataKey]
	if !ok {
		return nil, nil
	}

	var settings models.VaultSettings
	if err = json.Unmarshal(raw, &settings); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*settingsRepository.GetVaultSettings").
			Int64("user_id", userID).
			Msg("malformed vault settings in metadata, treating as unset")
		return nil, nil
	}

	return &settings, nil
}

// SaveVaultSettings upserts the vault security settings key, preserving all
// other metadata keys.
func (r *settingsRepository) SaveVaultSettings(ctx context.Context, userID int64, settings *models.VaultSettings) error {
	metadata, err := r.readMetadata(ctx, userID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode vault settings: %w", err)
	}
	metadata[models.VaultSettingsMetadataKey] = raw

	return r.writeMetadata(ctx, userID, metadata)
}

// RemoveVaultSettings deletes the vault security settings key, disabling
// vault protection entirely. Removing an absent key is a no-op.
func (r *settingsRepository) RemoveVaultSettings(ctx context.Context, userID int64) error {
	metadata, err := r.readMetadata(ctx, userID)
	if err != nil {
		return err
	}

	if _, ok := metadata[models.VaultSettingsMetadataKey]; !ok {
		return nil
	}
	delete(metadata, models.VaultSettingsMetadataKey)

	return r.writeMetadata(ctx, userID, metadata)
}

func (r *settingsRepository) readMetadata(ctx context.Context, userID int64) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	var raw []byte
	row := r.db.QueryRowContext(ctx, getUserMetadata, userID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*settingsRepository.readMetadata").Msg("error: scanning metadata")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	metadata := make(map[string]json.RawMessage)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, fmt.Errorf("decode user metadata: %w", err)
		}
	}

	return metadata, nil
}

func (r *settingsRepository) writeMetadata(ctx context.Context, userID int64, metadata map[string]json.RawMessage) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode user metadata: %w", err)
	}

	result, err := r.db.execRetry(ctx, updateUserMetadata, userID, raw)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*settingsRepository.writeMetadata").
			Int64("user_id", userID).
			Msg("failed to update user metadata")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
