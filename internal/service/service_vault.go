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
	"github.com/avetrov/agencydesk/models"
)

// vaultService is the concrete implementation of VaultService. It is the
// single place where credential plaintext and ciphertext meet: every write
// encrypts before the store sees the value, and only Reveal decrypts.
// Vault-affecting operations append to the audit trail; a failed audit write
// is logged but never fails the operation it describes.
type vaultService struct {
	credentials store.CredentialRepository
	audit       store.AuditRepository
	cipher      crypto.VaultCipher
	logger      *logger.Logger
}

// NewVaultService constructs a VaultService over the given repositories and
// cipher.
func NewVaultService(credentials store.CredentialRepository, audit store.AuditRepository, cipher crypto.VaultCipher, logger *logger.Logger) VaultService {
	return &vaultService{
		credentials: credentials,
		audit:       audit,
		cipher:      cipher,
		logger:      logger,
	}
}

// CreateCredential validates, encrypts and persists a new record.
func (v *vaultService) CreateCredential(ctx context.Context, userID int64, input models.CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Credential{}, ErrAuthenticationRequired
	}
	if input.Name == "" {
		return models.Credential{}, ErrInvalidDataProvided
	}
	if !input.Type.Valid() {
		return models.Credential{}, ErrUnknownCredentialType
	}
	if input.Value == nil {
		return models.Credential{}, ErrEmptySecretValue
	}

	blob, kind, err := v.encryptValue(*input.Value)
	if err != nil {
		log.Err(err).Str("name", input.Name).Msg("credential encryption failed")
		return models.Credential{}, err
	}

	created, err := v.credentials.CreateCredential(ctx, models.Credential{
		UserID:         userID,
		ClientID:       input.ClientID,
		Name:           input.Name,
		Type:           input.Type,
		ValueKind:      kind,
		EncryptedValue: blob,
	})
	if err != nil {
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	v.appendAudit(ctx, userID, models.AuditActionCredentialCreate, created.ID, map[string]string{
		"name": created.Name,
		"type": string(created.Type),
	})

	return created, nil
}

// GetCredential returns one record's metadata. The ciphertext stays inside
// the service; the JSON shape of models.Credential never carries it.
func (v *vaultService) GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	credential, err := v.credentials.GetCredential(ctx, userID, credentialID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("credential lookup ended with error: %w", err)
	}

	return credential, nil
}

// ListCredentials returns matching records, metadata only.
func (v *vaultService) ListCredentials(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error) {
	credentials, err := v.credentials.ListCredentials(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("credential list ended with error: %w", err)
	}

	return credentials, nil
}

// UpdateCredential rewrites a record. A nil input.Value keeps the stored
// ciphertext; a present one is re-encrypted and replaces it together with
// its kind discriminator.
func (v *vaultService) UpdateCredential(ctx context.Context, userID, credentialID int64, input models.CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Credential{}, ErrAuthenticationRequired
	}
	if input.Name == "" {
		return models.Credential{}, ErrInvalidDataProvided
	}
	if !input.Type.Valid() {
		return models.Credential{}, ErrUnknownCredentialType
	}

	credential := models.Credential{
		ID:       credentialID,
		UserID:   userID,
		ClientID: input.ClientID,
		Name:     input.Name,
		Type:     input.Type,
	}

	if input.Value != nil {
		blob, kind, err := v.encryptValue(*input.Value)
		if err != nil {
			log.Err(err).Int64("credential_id", credentialID).Msg("credential encryption failed")
			return models.Credential{}, err
		}
		credential.EncryptedValue = blob
		credential.ValueKind = kind
	}

	updated, err := v.credentials.UpdateCredential(ctx, credential)
	if err != nil {
		return models.Credential{}, fmt.Errorf("credential update ended with error: %w", err)
	}

	v.appendAudit(ctx, userID, models.AuditActionCredentialUpdate, updated.ID, map[string]string{
		"name":          updated.Name,
		"value_rotated": strconv.FormatBool(input.Value != nil),
	})

	return updated, nil
}

// DeleteCredential removes a record.
func (v *vaultService) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	if userID <= 0 {
		return ErrAuthenticationRequired
	}
	if err := v.credentials.DeleteCredential(ctx, userID, credentialID); err != nil {
		return fmt.Errorf("credential delete ended with error: %w", err)
	}

	v.appendAudit(ctx, userID, models.AuditActionCredentialDelete, credentialID, nil)

	return nil
}

// RevealCredential decrypts one record's value. The stored kind
// discriminator drives the decoded shape; records written before the
// discriminator existed fall back to the legacy payload sniff.
func (v *vaultService) RevealCredential(ctx context.Context, userID, credentialID int64) (models.RevealedCredential, error) {
	log := logger.FromContext(ctx)

	credential, err := v.credentials.GetCredential(ctx, userID, credentialID)
	if err != nil {
		return models.RevealedCredential{}, fmt.Errorf("credential lookup ended with error: %w", err)
	}

	plaintext, err := v.cipher.Decrypt(credential.EncryptedValue)
	if err != nil {
		log.Err(err).Int64("credential_id", credentialID).Msg("credential decryption failed")
		return models.RevealedCredential{}, fmt.Errorf("credential decryption failed: %w", err)
	}

	v.appendAudit(ctx, userID, models.AuditActionCredentialReveal, credential.ID, map[string]string{
		"name": credential.Name,
	})

	return models.RevealedCredential{
		Credential: credential,
		Value:      models.ParseSecretPlaintext(plaintext, credential.ValueKind),
	}, nil
}

// encryptValue serializes and encrypts a secret value, returning the
// ciphertext blob and the kind discriminator to store beside it.
func (v *vaultService) encryptValue(value models.SecretValue) (string, models.SecretKind, error) {
	kind := value.Kind
	if kind == "" {
		kind = models.SecretKindSingle
	}
	if kind == models.SecretKindFields && len(value.Fields) == 0 {
		return "", "", ErrEmptySecretValue
	}

	plaintext, err := value.Plaintext()
	if err != nil {
		return "", "", fmt.Errorf("secret serialization failed: %w", err)
	}

	blob, err := v.cipher.Encrypt(plaintext)
	if err != nil {
		return "", "", fmt.Errorf("credential encryption failed: %w", err)
	}

	return blob, kind, nil
}

// appendAudit records a vault-affecting operation. Audit failures must not
// undo the operation they describe, so they are logged and swallowed.
func (v *vaultService) appendAudit(ctx context.Context, userID int64, action string, targetID int64, details map[string]string) {
	event := models.AuditEvent{
		UserID:     userID,
		Action:     action,
		TargetType: "credential",
		TargetID:   targetID,
		Details:    details,
	}
	if err := v.audit.AppendAuditEvent(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("action", action).
			Int64("target_id", targetID).
			Msg("audit append failed")
	}
}
