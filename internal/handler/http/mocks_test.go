// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"context"
	"time"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/service"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// Hand-rolled func-field mocks for the service interfaces the endpoint
// tests drive. Only the methods a test uses need a func assigned.

type authServiceMock struct {
	registerUserFunc func(ctx context.Context, user models.User) (models.User, error)
	loginFunc        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFunc  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *authServiceMock) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFunc(ctx, user)
}

func (m *authServiceMock) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFunc(ctx, user)
}

func (m *authServiceMock) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *authServiceMock) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type vaultServiceMock struct {
	createFunc func(ctx context.Context, userID int64, input models.CredentialInput) (models.Credential, error)
	getFunc    func(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	listFunc   func(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error)
	updateFunc func(ctx context.Context, userID, credentialID int64, input models.CredentialInput) (models.Credential, error)
	deleteFunc func(ctx context.Context, userID, credentialID int64) error
	revealFunc func(ctx context.Context, userID, credentialID int64) (models.RevealedCredential, error)
}

func (m *vaultServiceMock) CreateCredential(ctx context.Context, userID int64, input models.CredentialInput) (models.Credential, error) {
	return m.createFunc(ctx, userID, input)
}

func (m *vaultServiceMock) GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	return m.getFunc(ctx, userID, credentialID)
}

func (m *vaultServiceMock) ListCredentials(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error) {
	return m.listFunc(ctx, filter)
}

func (m *vaultServiceMock) UpdateCredential(ctx context.Context, userID, credentialID int64, input models.CredentialInput) (models.Credential, error) {
	return m.updateFunc(ctx, userID, credentialID, input)
}

func (m *vaultServiceMock) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	return m.deleteFunc(ctx, userID, credentialID)
}

func (m *vaultServiceMock) RevealCredential(ctx context.Context, userID, credentialID int64) (models.RevealedCredential, error) {
	return m.revealFunc(ctx, userID, credentialID)
}

type settingsServiceMock struct {
	getFunc           func(ctx context.Context, userID int64) (*models.VaultSettings, error)
	setPINFunc        func(ctx context.Context, userID int64, pin, confirmation string) (*models.VaultSettings, error)
	setBiometricsFunc func(ctx context.Context, userID int64, enabled bool) (*models.VaultSettings, error)
	disableFunc       func(ctx context.Context, userID int64) error
	recordFailureFunc func(ctx context.Context, userID int64, attempts int) error
}

func (m *settingsServiceMock) GetVaultSettings(ctx context.Context, userID int64) (*models.VaultSettings, error) {
	return m.getFunc(ctx, userID)
}

func (m *settingsServiceMock) SetPIN(ctx context.Context, userID int64, pin, confirmation string) (*models.VaultSettings, error) {
	return m.setPINFunc(ctx, userID, pin, confirmation)
}

func (m *settingsServiceMock) SetBiometrics(ctx context.Context, userID int64, enabled bool) (*models.VaultSettings, error) {
	return m.setBiometricsFunc(ctx, userID, enabled)
}

func (m *settingsServiceMock) DisableProtection(ctx context.Context, userID int64) error {
	return m.disableFunc(ctx, userID)
}

func (m *settingsServiceMock) RecordUnlockFailure(ctx context.Context, userID int64, attempts int) error {
	return m.recordFailureFunc(ctx, userID, attempts)
}

type auditServiceMock struct {
	listFunc func(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error)
}

func (m *auditServiceMock) ListAuditEvents(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error) {
	return m.listFunc(ctx, userID, limit)
}

type financeServiceMock struct {
	createFunc  func(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error)
	listFunc    func(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error)
	deleteFunc  func(ctx context.Context, entryID int64) error
	summaryFunc func(ctx context.Context, from, to time.Time) (models.FinanceSummary, error)
}

func (m *financeServiceMock) CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	return m.createFunc(ctx, entry)
}

func (m *financeServiceMock) ListFinanceEntries(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error) {
	return m.listFunc(ctx, from, to)
}

func (m *financeServiceMock) DeleteFinanceEntry(ctx context.Context, entryID int64) error {
	return m.deleteFunc(ctx, entryID)
}

func (m *financeServiceMock) Summary(ctx context.Context, from, to time.Time) (models.FinanceSummary, error) {
	return m.summaryFunc(ctx, from, to)
}

// parseTokenAs returns an authServiceMock whose ParseToken always answers
// with the given user ID. The endpoint tests use it to pass the auth
// middleware without minting real JWTs.
func parseTokenAs(userID int64) *authServiceMock {
	return &authServiceMock{
		parseTokenFunc: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
	}
}

// newTestHandler builds a Handler over the given service mocks with a Nop
// logger and no authenticator gate.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, nil, nil, logger.Nop())
}
