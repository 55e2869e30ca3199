// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"time"

	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// Hand-rolled func-field mocks shared by the service tests. Only the
// methods a test drives need a func assigned.

type userRepositoryMock struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFunc func(ctx context.Context, login string) (models.User, error)
	getUserByIDFunc     func(ctx context.Context, userID int64) (models.User, error)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *userRepositoryMock) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.findUserByLoginFunc(ctx, login)
}

func (m *userRepositoryMock) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFunc(ctx, userID)
}

type credentialRepositoryMock struct {
	createFunc func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getFunc    func(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	listFunc   func(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error)
	updateFunc func(ctx context.Context, credential models.Credential) (models.Credential, error)
	deleteFunc func(ctx context.Context, userID, credentialID int64) error
}

func (m *credentialRepositoryMock) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	return m.createFunc(ctx, credential)
}

func (m *credentialRepositoryMock) GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	return m.getFunc(ctx, userID, credentialID)
}

func (m *credentialRepositoryMock) ListCredentials(ctx context.Context, filter store.CredentialFilter) ([]models.Credential, error) {
	return m.listFunc(ctx, filter)
}

func (m *credentialRepositoryMock) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	return m.updateFunc(ctx, credential)
}

func (m *credentialRepositoryMock) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	return m.deleteFunc(ctx, userID, credentialID)
}

// auditRecorderMock collects appended events in order.
type auditRecorderMock struct {
	events []models.AuditEvent
	err    error
}

func (m *auditRecorderMock) AppendAuditEvent(_ context.Context, event models.AuditEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *auditRecorderMock) ListAuditEvents(_ context.Context, userID int64, limit int) ([]models.AuditEvent, error) {
	if m.err != nil {
		return nil, m.err
	}

	var out []models.AuditEvent
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		if m.events[i].UserID == userID {
			out = append(out, m.events[i])
		}
	}
	return out, nil
}

// settingsRepositoryMock keeps one user's settings in memory.
type settingsRepositoryMock struct {
	settings map[int64]*models.VaultSettings
	err      error
}

func newSettingsRepositoryMock() *settingsRepositoryMock {
	return &settingsRepositoryMock{settings: make(map[int64]*models.VaultSettings)}
}

func (m *settingsRepositoryMock) GetVaultSettings(_ context.Context, userID int64) (*models.VaultSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	stored, ok := m.settings[userID]
	if !ok {
		return nil, nil
	}
	clone := *stored
	return &clone, nil
}

func (m *settingsRepositoryMock) SaveVaultSettings(_ context.Context, userID int64, settings *models.VaultSettings) error {
	if m.err != nil {
		return m.err
	}
	clone := *settings
	m.settings[userID] = &clone
	return nil
}

func (m *settingsRepositoryMock) RemoveVaultSettings(_ context.Context, userID int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.settings, userID)
	return nil
}

type financeRepositoryMock struct {
	entries []models.FinanceEntry
	err     error
}

func (m *financeRepositoryMock) CreateFinanceEntry(_ context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	if m.err != nil {
		return models.FinanceEntry{}, m.err
	}
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *financeRepositoryMock) ListFinanceEntries(_ context.Context, from, to time.Time) ([]models.FinanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}

	var out []models.FinanceEntry
	for _, entry := range m.entries {
		if entry.EntryDate.Before(from) || entry.EntryDate.After(to) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (m *financeRepositoryMock) DeleteFinanceEntry(_ context.Context, entryID int64) error {
	for i, entry := range m.entries {
		if entry.ID == entryID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return store.ErrEntryNotFound
}

type projectRepositoryMock struct {
	createProjectFunc func(ctx context.Context, project models.Project) (models.Project, error)
	listProjectsFunc  func(ctx context.Context) ([]models.Project, error)
	createTaskFunc    func(ctx context.Context, task models.Task) (models.Task, error)
	getTaskFunc       func(ctx context.Context, taskID int64) (models.Task, error)
	listTasksFunc     func(ctx context.Context, projectID int64) ([]models.Task, error)
	moveTaskFunc      func(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error)
	deleteTaskFunc    func(ctx context.Context, taskID int64) error
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return m.createProjectFunc(ctx, project)
}

func (m *projectRepositoryMock) ListProjects(ctx context.Context) ([]models.Project, error) {
	return m.listProjectsFunc(ctx)
}

func (m *projectRepositoryMock) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.createTaskFunc(ctx, task)
}

func (m *projectRepositoryMock) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	return m.getTaskFunc(ctx, taskID)
}

func (m *projectRepositoryMock) ListTasks(ctx context.Context, projectID int64) ([]models.Task, error) {
	return m.listTasksFunc(ctx, projectID)
}

func (m *projectRepositoryMock) MoveTask(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error) {
	return m.moveTaskFunc(ctx, taskID, status, position)
}

func (m *projectRepositoryMock) DeleteTask(ctx context.Context, taskID int64) error {
	return m.deleteTaskFunc(ctx, taskID)
}

type domainRepositoryMock struct {
	domains    []models.Domain
	updates    []models.Domain
	listErr    error
	updateErr  error
	deletedIDs []int64
}

func (m *domainRepositoryMock) CreateDomain(_ context.Context, domain models.Domain) (models.Domain, error) {
	domain.ID = int64(len(m.domains) + 1)
	m.domains = append(m.domains, domain)
	return domain, nil
}

func (m *domainRepositoryMock) ListDomains(_ context.Context) ([]models.Domain, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.domains, nil
}

func (m *domainRepositoryMock) UpdateDomainExpiry(_ context.Context, domainID int64, registrar string, expiresAt *time.Time, checkedAt time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, models.Domain{
		ID:        domainID,
		Registrar: registrar,
		ExpiresAt: expiresAt,
		CheckedAt: &checkedAt,
	})
	return nil
}

func (m *domainRepositoryMock) DeleteDomain(_ context.Context, domainID int64) error {
	m.deletedIDs = append(m.deletedIDs, domainID)
	return nil
}

type clientRepositoryMock struct {
	createClientFunc func(ctx context.Context, client models.Client) (models.Client, error)
	getClientFunc    func(ctx context.Context, clientID int64) (models.Client, error)
	listClientsFunc  func(ctx context.Context, status models.ClientStatus) ([]models.Client, error)
	updateClientFunc func(ctx context.Context, client models.Client) (models.Client, error)
	deleteClientFunc func(ctx context.Context, clientID int64) error
}

func (m *clientRepositoryMock) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return m.createClientFunc(ctx, client)
}

func (m *clientRepositoryMock) GetClient(ctx context.Context, clientID int64) (models.Client, error) {
	return m.getClientFunc(ctx, clientID)
}

func (m *clientRepositoryMock) ListClients(ctx context.Context, status models.ClientStatus) ([]models.Client, error) {
	return m.listClientsFunc(ctx, status)
}

func (m *clientRepositoryMock) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return m.updateClientFunc(ctx, client)
}

func (m *clientRepositoryMock) DeleteClient(ctx context.Context, clientID int64) error {
	return m.deleteClientFunc(ctx, clientID)
}
