// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/logger"
)

// Repositories groups all server-side repositories into a single value the
// service layer is wired with.
type Repositories struct {
	UserRepository       UserRepository
	SettingsRepository   SettingsRepository
	CredentialRepository CredentialRepository
	ClientRepository     ClientRepository
	DomainRepository     DomainRepository
	FinanceRepository    FinanceRepository
	ProjectRepository    ProjectRepository
	AuditRepository      AuditRepository
	WebAuthnRepository   WebAuthnRepository
}

// NewRepositories connects to PostgreSQL, applies pending migrations and
// wires every repository over the shared connection pool.
func NewRepositories(ctx context.Context, cfg config.DB, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating repositories...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		SettingsRepository:   NewSettingsRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		ClientRepository:     NewClientRepository(db, log),
		DomainRepository:     NewDomainRepository(db, log),
		FinanceRepository:    NewFinanceRepository(db, log),
		ProjectRepository:    NewProjectRepository(db, log),
		AuditRepository:      NewAuditRepository(db, log),
		WebAuthnRepository:   NewWebAuthnRepository(db, log),
	}, nil
}
