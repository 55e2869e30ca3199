// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package service implements the business layer between the HTTP handlers
// and the store: authentication, the credential vault and its protection
// settings, agency clients, domains, finances and the kanban board.
package service

import (
	"context"
	"time"

	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// AuthService handles registration, login and the JWT lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService owns the credential records and the encryption boundary:
// plaintext goes in on writes, ciphertext lives at rest, and plaintext comes
// back out only through Reveal.
type VaultService interface {
	CreateCredential(ctx context.Context, userID int64, input models.CredentialInput) (models.Credential, error)
	GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	ListCredentials(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error)
	UpdateCredential(ctx context.Context, userID, credentialID int64, input models.CredentialInput) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID, credentialID int64) error
	RevealCredential(ctx context.Context, userID, credentialID int64) (models.RevealedCredential, error)
}

// SettingsService manages the vault security settings stored in the user's
// profile metadata.
type SettingsService interface {
	GetVaultSettings(ctx context.Context, userID int64) (*models.VaultSettings, error)
	SetPIN(ctx context.Context, userID int64, pin, confirmation string) (*models.VaultSettings, error)
	SetBiometrics(ctx context.Context, userID int64, enabled bool) (*models.VaultSettings, error)
	DisableProtection(ctx context.Context, userID int64) error
	RecordUnlockFailure(ctx context.Context, userID int64, attempts int) error
}

// ClientService manages agency client records.
type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClient(ctx context.Context, clientID int64) (models.Client, error)
	ListClients(ctx context.Context, status models.ClientStatus) ([]models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// DomainService tracks domains and refreshes their expiry via RDAP.
type DomainService interface {
	CreateDomain(ctx context.Context, domain models.Domain) (models.Domain, error)
	ListDomains(ctx context.Context) ([]models.Domain, error)
	DeleteDomain(ctx context.Context, domainID int64) error
	RefreshDomains(ctx context.Context) error
}

// FinanceService records entries and aggregates the dashboard summary.
type FinanceService interface {
	CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error)
	ListFinanceEntries(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error)
	DeleteFinanceEntry(ctx context.Context, entryID int64) error
	Summary(ctx context.Context, from, to time.Time) (models.FinanceSummary, error)
}

// ProjectService manages projects and the kanban board.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	Board(ctx context.Context, projectID int64) ([]models.BoardColumn, error)
	MoveTask(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// AuditService reads back the append-only audit trail.
type AuditService interface {
	ListAuditEvents(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error)
}
