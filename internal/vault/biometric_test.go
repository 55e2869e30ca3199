// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/models"
)

type credentialStoreMock struct {
	webAuthnCredentialsFunc func(ctx context.Context, userID int64) ([]models.WebAuthnCredential, error)
	addFunc                 func(ctx context.Context, credential *models.WebAuthnCredential) error
	updateSignCountFunc     func(ctx context.Context, userID int64, credentialID []byte, signCount uint32) error
}

func (m *credentialStoreMock) WebAuthnCredentials(ctx context.Context, userID int64) ([]models.WebAuthnCredential, error) {
	return m.webAuthnCredentialsFunc(ctx, userID)
}

func (m *credentialStoreMock) AddWebAuthnCredential(ctx context.Context, credential *models.WebAuthnCredential) error {
	return m.addFunc(ctx, credential)
}

func (m *credentialStoreMock) UpdateWebAuthnSignCount(ctx context.Context, userID int64, credentialID []byte, signCount uint32) error {
	return m.updateSignCountFunc(ctx, userID, credentialID, signCount)
}

func testGate(t *testing.T, store CredentialStore) *BiometricGate {
	t.Helper()

	gate, err := NewBiometricGate(config.App{
		WebAuthnRPID:     "localhost",
		WebAuthnRPOrigin: "http://localhost:8080",
	}, store)
	require.NoError(t, err)

	return gate
}

func TestBiometricGate_IsAvailable(t *testing.T) {
	tests := []struct {
		name        string
		credentials []models.WebAuthnCredential
		storeErr    error
		want        bool
	}{
		{
			name: "registered credential reads as available",
			credentials: []models.WebAuthnCredential{
				{UserID: 1, CredentialID: []byte{0x01}, PublicKey: []byte{0x02}},
			},
			want: true,
		},
		{
			name:        "no credentials reads as unavailable",
			credentials: nil,
			want:        false,
		},
		{
			name:     "storage failure reads as unavailable instead of erroring",
			storeErr: errors.New("connection refused"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &credentialStoreMock{
				webAuthnCredentialsFunc: func(_ context.Context, _ int64) ([]models.WebAuthnCredential, error) {
					return tt.credentials, tt.storeErr
				},
			}

			gate := testGate(t, store)
			assert.Equal(t, tt.want, gate.IsAvailable(context.Background(), 1))
		})
	}
}

func TestBiometricGate_BeginRegistration(t *testing.T) {
	store := &credentialStoreMock{
		webAuthnCredentialsFunc: func(_ context.Context, _ int64) ([]models.WebAuthnCredential, error) {
			return nil, nil
		},
	}
	gate := testGate(t, store)
	user := models.User{UserID: 7, Login: "owner@agency.dev", Name: "Owner"}

	creation, err := gate.BeginRegistration(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, creation)

	assert.Equal(t, "localhost", creation.Response.RelyingParty.ID)
	assert.NotEmpty(t, creation.Response.Challenge)
	assert.Equal(t, protocol.Platform, creation.Response.AuthenticatorSelection.AuthenticatorAttachment)
}

func TestBiometricGate_BeginVerify_Unavailable(t *testing.T) {
	store := &credentialStoreMock{
		webAuthnCredentialsFunc: func(_ context.Context, _ int64) ([]models.WebAuthnCredential, error) {
			return nil, nil
		},
	}
	gate := testGate(t, store)

	_, err := gate.BeginVerify(context.Background(), models.User{UserID: 7, Login: "owner@agency.dev"})
	assert.ErrorIs(t, err, ErrBiometricUnavailable)
}

func TestBiometricGate_FinishWithoutBegin(t *testing.T) {
	store := &credentialStoreMock{
		webAuthnCredentialsFunc: func(_ context.Context, _ int64) ([]models.WebAuthnCredential, error) {
			return nil, nil
		},
	}
	gate := testGate(t, store)
	user := models.User{UserID: 7, Login: "owner@agency.dev"}

	err := gate.FinishRegistration(context.Background(), user, &protocol.ParsedCredentialCreationData{})
	assert.ErrorIs(t, err, ErrNoPendingCeremony)

	ok, err := gate.FinishVerify(context.Background(), user, &protocol.ParsedCredentialAssertionData{})
	assert.ErrorIs(t, err, ErrNoPendingCeremony)
	assert.False(t, ok)
}
