// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package store implements the persistence layer: PostgreSQL repositories
// for the server and an SQLite credential metadata cache for the TUI client.
package store

import (
	"context"
	"time"

	"github.com/avetrov/agencydesk/models"
)

// UserRepository handles user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SettingsRepository reads and writes the vault security settings stored
// inside the user's profile metadata bag. The bag is opaque to the server:
// other metadata keys survive settings writes untouched.
type SettingsRepository interface {
	GetVaultSettings(ctx context.Context, userID int64) (*models.VaultSettings, error)
	SaveVaultSettings(ctx context.Context, userID int64, settings *models.VaultSettings) error
	RemoveVaultSettings(ctx context.Context, userID int64) error
}

// CredentialFilter narrows credential list queries. Zero-valued fields are
// ignored.
type CredentialFilter struct {
	UserID   int64
	Types    []models.CredentialType
	ClientID *int64
	Search   string
}

// CredentialRepository handles encrypted credential records. Values arrive
// and leave this layer as ciphertext blobs; the store never sees plaintext.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	ListCredentials(ctx context.Context, filter CredentialFilter) ([]models.Credential, error)
	UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID, credentialID int64) error
}

// ClientRepository handles agency client records.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClient(ctx context.Context, clientID int64) (models.Client, error)
	ListClients(ctx context.Context, status models.ClientStatus) ([]models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// DomainRepository handles tracked domains and their expiry probes.
type DomainRepository interface {
	CreateDomain(ctx context.Context, domain models.Domain) (models.Domain, error)
	ListDomains(ctx context.Context) ([]models.Domain, error)
	UpdateDomainExpiry(ctx context.Context, domainID int64, registrar string, expiresAt *time.Time, checkedAt time.Time) error
	DeleteDomain(ctx context.Context, domainID int64) error
}

// FinanceRepository handles expense and revenue entries.
type FinanceRepository interface {
	CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error)
	ListFinanceEntries(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error)
	DeleteFinanceEntry(ctx context.Context, entryID int64) error
}

// ProjectRepository handles projects and their kanban tasks.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	ListTasks(ctx context.Context, projectID int64) ([]models.Task, error)
	MoveTask(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// AuditRepository appends and lists audit trail events. Events are never
// updated or deleted.
type AuditRepository interface {
	AppendAuditEvent(ctx context.Context, event models.AuditEvent) error
	ListAuditEvents(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error)
}

// WebAuthnRepository persists registered platform-authenticator credentials.
// Satisfies the vault package's credential store dependency.
type WebAuthnRepository interface {
	WebAuthnCredentials(ctx context.Context, userID int64) ([]models.WebAuthnCredential, error)
	AddWebAuthnCredential(ctx context.Context, credential *models.WebAuthnCredential) error
	UpdateWebAuthnSignCount(ctx context.Context, userID int64, credentialID []byte, signCount uint32) error
}
