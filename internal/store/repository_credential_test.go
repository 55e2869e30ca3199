// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

var credentialColumns = []string{
	"id", "user_id", "client_id", "name", "credential_type",
	"value_kind", "encrypted_value", "created_at", "updated_at",
}

func TestCreateCredential_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.NewRows(credentialColumns).
		AddRow(10, 1, nil, "Stripe live key", "api_key", "single", "blobbase64", now, now)

	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs(int64(1), nil, "Stripe live key", models.CredentialTypeAPIKey, models.SecretKindSingle, "blobbase64").
		WillReturnRows(rows)

	created, err := repo.CreateCredential(context.Background(), models.Credential{
		UserID:         1,
		Name:           "Stripe live key",
		Type:           models.CredentialTypeAPIKey,
		ValueKind:      models.SecretKindSingle,
		EncryptedValue: "blobbase64",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "blobbase64", created.EncryptedValue)
}

func TestCreateCredential_UnknownClient(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	clientID := int64(404)
	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs(int64(1), clientID, "key", models.CredentialTypeAPIKey, models.SecretKindSingle, "blob").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateCredential(context.Background(), models.Credential{
		UserID:         1,
		ClientID:       &clientID,
		Name:           "key",
		Type:           models.CredentialTypeAPIKey,
		ValueKind:      models.SecretKindSingle,
		EncryptedValue: "blob",
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetCredential_ScopedByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	// Record 10 exists but belongs to another user, so the scoped query
	// returns no rows.
	mock.ExpectQuery("SELECT id, user_id, client_id, name, credential_type").
		WithArgs(int64(2), int64(10)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCredential(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestListCredentials_JoinsClientName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	now := time.Now()
	clientID := int64(3)
	company := "Acme Corp"
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "client_id", "company", "name", "credential_type",
		"value_kind", "encrypted_value", "created_at", "updated_at",
	}).
		AddRow(10, 1, clientID, company, "Acme FTP", "password", "fields", "blob1", now, now).
		AddRow(11, 1, nil, nil, "Personal token", "token", "single", "blob2", now, now)

	mock.ExpectQuery("SELECT c.id, c.user_id, c.client_id, cl.company.+ORDER BY c.created_at DESC, c.id DESC").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	credentials, err := repo.ListCredentials(context.Background(), CredentialFilter{UserID: 1})
	require.NoError(t, err)
	require.Len(t, credentials, 2)

	require.NotNil(t, credentials[0].ClientName)
	assert.Equal(t, "Acme Corp", *credentials[0].ClientName)
	assert.Nil(t, credentials[1].ClientName)
}

func TestUpdateCredential_MetadataOnlyKeepsCiphertext(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.NewRows(credentialColumns).
		AddRow(10, 1, nil, "Renamed key", "api_key", "single", "originalblob", now, now)

	// Empty EncryptedValue routes to the metadata-only statement, leaving
	// encrypted_value out of the SET list entirely.
	mock.ExpectQuery("SET client_id = \\$3, name = \\$4, credential_type = \\$5, updated_at").
		WithArgs(int64(1), int64(10), nil, "Renamed key", models.CredentialTypeAPIKey).
		WillReturnRows(rows)

	updated, err := repo.UpdateCredential(context.Background(), models.Credential{
		ID:     10,
		UserID: 1,
		Name:   "Renamed key",
		Type:   models.CredentialTypeAPIKey,
	})
	require.NoError(t, err)
	assert.Equal(t, "originalblob", updated.EncryptedValue)
}

func TestDeleteCredential(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCredentialRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(int64(1), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteCredential(context.Background(), 1, 10))
	})

	t.Run("missing record", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCredentialRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(int64(1), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteCredential(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCredentialRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(int64(1), int64(10)).
			WillReturnError(errors.New("connection reset"))

		err := repo.DeleteCredential(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
