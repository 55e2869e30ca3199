// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
	"github.com/avetrov/agencydesk/models"
)

// settingsService manages the vault security settings living in the user's
// profile metadata. The clear PIN exists only inside SetPIN's stack frame;
// what gets stored is the salted digest.
type settingsService struct {
	settings store.SettingsRepository
	audit    store.AuditRepository
	hasher   crypto.PINHasher
	logger   *logger.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(settings store.SettingsRepository, audit store.AuditRepository, hasher crypto.PINHasher, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		audit:    audit,
		hasher:   hasher,
		logger:   logger,
	}
}

// GetVaultSettings returns the user's stored settings, nil when protection
// was never configured.
func (s *settingsService) GetVaultSettings(ctx context.Context, userID int64) (*models.VaultSettings, error) {
	settings, err := s.settings.GetVaultSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault settings lookup ended with error: %w", err)
	}

	return settings, nil
}

// SetPIN runs the double-entry set flow and stores the derived digest,
// enabling PIN protection. Biometric preference survives a PIN change.
func (s *settingsService) SetPIN(ctx context.Context, userID int64, pin, confirmation string) (*models.VaultSettings, error) {
	digest, salt, err := vault.SetPIN(s.hasher, pin, confirmation)
	if err != nil {
		return nil, err
	}

	current, err := s.settings.GetVaultSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault settings lookup ended with error: %w", err)
	}

	settings := &models.VaultSettings{
		PINEnabled: true,
		PINHash:    digest,
		PINSalt:    salt,
		PINLength:  len(pin),
	}
	if current != nil {
		settings.BiometricsEnabled = current.BiometricsEnabled
	}

	if err = s.settings.SaveVaultSettings(ctx, userID, settings); err != nil {
		return nil, fmt.Errorf("vault settings save ended with error: %w", err)
	}

	s.appendAudit(ctx, userID, models.AuditActionSettingsUpdate, map[string]string{
		"pin_enabled": "true",
		"pin_length":  strconv.Itoa(settings.PINLength),
	})

	return settings, nil
}

// SetBiometrics flips the platform-authenticator preference. Enabling it
// requires PIN protection to already be on: the PIN stays the fallback path.
func (s *settingsService) SetBiometrics(ctx context.Context, userID int64, enabled bool) (*models.VaultSettings, error) {
	current, err := s.settings.GetVaultSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault settings lookup ended with error: %w", err)
	}
	if current == nil || !current.PINEnabled {
		return nil, vault.ErrPINNotSet
	}

	current.BiometricsEnabled = enabled
	if err = s.settings.SaveVaultSettings(ctx, userID, current); err != nil {
		return nil, fmt.Errorf("vault settings save ended with error: %w", err)
	}

	s.appendAudit(ctx, userID, models.AuditActionSettingsUpdate, map[string]string{
		"biometrics_enabled": strconv.FormatBool(enabled),
	})

	return current, nil
}

// DisableProtection removes the settings entirely: the vault goes back to
// the unprotected default, credential records stay encrypted at rest.
func (s *settingsService) DisableProtection(ctx context.Context, userID int64) error {
	if err := s.settings.RemoveVaultSettings(ctx, userID); err != nil {
		return fmt.Errorf("vault settings removal ended with error: %w", err)
	}

	s.appendAudit(ctx, userID, models.AuditActionSettingsRemove, nil)

	return nil
}

// RecordUnlockFailure lands a client-reported failed unlock attempt in the
// audit trail. The client enforces its own lockout; the server just keeps
// the record.
func (s *settingsService) RecordUnlockFailure(ctx context.Context, userID int64, attempts int) error {
	s.appendAudit(ctx, userID, models.AuditActionUnlockFailure, map[string]string{
		"attempts": strconv.Itoa(attempts),
	})

	return nil
}

func (s *settingsService) appendAudit(ctx context.Context, userID int64, action string, details map[string]string) {
	event := models.AuditEvent{
		UserID:     userID,
		Action:     action,
		TargetType: "vault_settings",
		Details:    details,
	}
	if err := s.audit.AppendAuditEvent(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("action", action).
			Msg("audit append failed")
	}
}
