// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

const testCipherKey = "vault-test-passphrase"

// inMemoryCredentials is a credentialRepositoryMock wired to behave like a
// tiny store: create assigns ids, get returns what create saved.
func inMemoryCredentials() (*credentialRepositoryMock, *map[int64]models.Credential) {
	records := make(map[int64]models.Credential)
	nextID := int64(0)

	mock := &credentialRepositoryMock{
		createFunc: func(_ context.Context, credential models.Credential) (models.Credential, error) {
			nextID++
			credential.ID = nextID
			records[credential.ID] = credential
			return credential, nil
		},
		getFunc: func(_ context.Context, userID, credentialID int64) (models.Credential, error) {
			record := records[credentialID]
			return record, nil
		},
		updateFunc: func(_ context.Context, credential models.Credential) (models.Credential, error) {
			stored := records[credential.ID]
			if credential.EncryptedValue == "" {
				credential.EncryptedValue = stored.EncryptedValue
				credential.ValueKind = stored.ValueKind
			}
			records[credential.ID] = credential
			return credential, nil
		},
		deleteFunc: func(_ context.Context, userID, credentialID int64) error {
			delete(records, credentialID)
			return nil
		},
	}

	return mock, &records
}

func newTestVaultService(records *credentialRepositoryMock, audit *auditRecorderMock) VaultService {
	return NewVaultService(records, audit, crypto.NewVaultCipher(testCipherKey), logger.Nop())
}

func TestVaultService_CreateEncryptsBeforePersisting(t *testing.T) {
	records, stored := inMemoryCredentials()
	audit := &auditRecorderMock{}
	vaultSvc := newTestVaultService(records, audit)

	created, err := vaultSvc.CreateCredential(context.Background(), 1, models.CredentialInput{
		Name:  "Stripe live key",
		Type:  models.CredentialTypeAPIKey,
		Value: ptr(models.SingleSecret("sk_live_abc123")),
	})
	require.NoError(t, err)

	record := (*stored)[created.ID]
	assert.NotEmpty(t, record.EncryptedValue)
	assert.NotContains(t, record.EncryptedValue, "sk_live_abc123")
	assert.Equal(t, models.SecretKindSingle, record.ValueKind)

	// The blob decrypts back to the original plaintext with the same key.
	plaintext, err := crypto.NewVaultCipher(testCipherKey).Decrypt(record.EncryptedValue)
	require.NoError(t, err)
	assert.Equal(t, "sk_live_abc123", plaintext)

	require.Len(t, audit.events, 1)
	assert.Equal(t, models.AuditActionCredentialCreate, audit.events[0].Action)
	assert.Equal(t, created.ID, audit.events[0].TargetID)
}

func TestVaultService_RevealRoundTrip(t *testing.T) {
	records, _ := inMemoryCredentials()
	audit := &auditRecorderMock{}
	vaultSvc := newTestVaultService(records, audit)

	t.Run("single value", func(t *testing.T) {
		created, err := vaultSvc.CreateCredential(context.Background(), 1, models.CredentialInput{
			Name:  "Deploy token",
			Type:  models.CredentialTypeToken,
			Value: ptr(models.SingleSecret("ghp_XXXX")),
		})
		require.NoError(t, err)

		revealed, err := vaultSvc.RevealCredential(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SecretKindSingle, revealed.Value.Kind)
		assert.Equal(t, "ghp_XXXX", revealed.Value.Single)
	})

	t.Run("field list", func(t *testing.T) {
		fields := []models.CredentialField{
			{Key: "client_id", Value: "abc"},
			{Key: "client_secret", Value: "s3cr3t"},
		}
		created, err := vaultSvc.CreateCredential(context.Background(), 1, models.CredentialInput{
			Name:  "OAuth app",
			Type:  models.CredentialTypeOther,
			Value: ptr(models.FieldsSecret(fields)),
		})
		require.NoError(t, err)

		revealed, err := vaultSvc.RevealCredential(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SecretKindFields, revealed.Value.Kind)
		assert.Equal(t, fields, revealed.Value.Fields)
	})
}

func TestVaultService_RevealLegacyRecords(t *testing.T) {
	// Rows written before the kind discriminator carry an empty ValueKind;
	// the decoded shape comes from the payload sniff.
	cipher := crypto.NewVaultCipher(testCipherKey)

	tests := []struct {
		name      string
		plaintext string
		wantKind  models.SecretKind
	}{
		{
			name:      "json array of key/value pairs reads as fields",
			plaintext: `[{"key":"user","value":"admin"},{"key":"pass","value":"hunter2"}]`,
			wantKind:  models.SecretKindFields,
		},
		{
			name:      "opaque string reads as single",
			plaintext: "just-a-password",
			wantKind:  models.SecretKindSingle,
		},
		{
			name:      "json array with foreign shape reads as single",
			plaintext: `[{"name":"x"}]`,
			wantKind:  models.SecretKindSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)

			records := &credentialRepositoryMock{
				getFunc: func(_ context.Context, _, _ int64) (models.Credential, error) {
					return models.Credential{ID: 1, UserID: 1, EncryptedValue: blob}, nil
				},
			}
			vaultSvc := newTestVaultService(records, &auditRecorderMock{})

			revealed, err := vaultSvc.RevealCredential(context.Background(), 1, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, revealed.Value.Kind)
		})
	}
}

func TestVaultService_RevealCorruptBlobFails(t *testing.T) {
	records := &credentialRepositoryMock{
		getFunc: func(_ context.Context, _, _ int64) (models.Credential, error) {
			return models.Credential{ID: 1, UserID: 1, EncryptedValue: "bm90LWEtcmVhbC1ibG9i"}, nil
		},
	}
	audit := &auditRecorderMock{}
	vaultSvc := newTestVaultService(records, audit)

	_, err := vaultSvc.RevealCredential(context.Background(), 1, 1)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	// No reveal event lands in the trail for a failed decrypt.
	assert.Empty(t, audit.events)
}

func TestVaultService_UpdateWithoutValueKeepsCiphertext(t *testing.T) {
	records, stored := inMemoryCredentials()
	vaultSvc := newTestVaultService(records, &auditRecorderMock{})

	created, err := vaultSvc.CreateCredential(context.Background(), 1, models.CredentialInput{
		Name:  "Old name",
		Type:  models.CredentialTypePassword,
		Value: ptr(models.SingleSecret("hunter2")),
	})
	require.NoError(t, err)
	originalBlob := (*stored)[created.ID].EncryptedValue

	updated, err := vaultSvc.UpdateCredential(context.Background(), 1, created.ID, models.CredentialInput{
		Name: "New name",
		Type: models.CredentialTypePassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, originalBlob, (*stored)[created.ID].EncryptedValue)
}

func TestVaultService_CreateValidation(t *testing.T) {
	records, _ := inMemoryCredentials()
	vaultSvc := newTestVaultService(records, &auditRecorderMock{})

	tests := []struct {
		name    string
		input   models.CredentialInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   models.CredentialInput{Type: models.CredentialTypeAPIKey, Value: ptr(models.SingleSecret("x"))},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "unknown type",
			input:   models.CredentialInput{Name: "x", Type: "certificate", Value: ptr(models.SingleSecret("x"))},
			wantErr: ErrUnknownCredentialType,
		},
		{
			name:    "missing value",
			input:   models.CredentialInput{Name: "x", Type: models.CredentialTypeAPIKey},
			wantErr: ErrEmptySecretValue,
		},
		{
			name:    "fields kind without fields",
			input:   models.CredentialInput{Name: "x", Type: models.CredentialTypeAPIKey, Value: &models.SecretValue{Kind: models.SecretKindFields}},
			wantErr: ErrEmptySecretValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vaultSvc.CreateCredential(context.Background(), 1, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultService_MutationsRequireIdentity(t *testing.T) {
	records, _ := inMemoryCredentials()
	vaultSvc := newTestVaultService(records, &auditRecorderMock{})
	input := models.CredentialInput{Name: "x", Type: models.CredentialTypeAPIKey, Value: ptr(models.SingleSecret("x"))}

	_, err := vaultSvc.CreateCredential(context.Background(), 0, input)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = vaultSvc.UpdateCredential(context.Background(), 0, 1, input)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	err = vaultSvc.DeleteCredential(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestVaultService_AuditFailureDoesNotFailOperation(t *testing.T) {
	records, _ := inMemoryCredentials()
	audit := &auditRecorderMock{err: assert.AnError}
	vaultSvc := newTestVaultService(records, audit)

	_, err := vaultSvc.CreateCredential(context.Background(), 1, models.CredentialInput{
		Name:  "key",
		Type:  models.CredentialTypeAPIKey,
		Value: ptr(models.SingleSecret("x")),
	})
	assert.NoError(t, err)
}

func ptr(v models.SecretValue) *models.SecretValue {
	return &v
}
