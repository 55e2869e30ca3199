// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
)

// Services groups every business service the transport layer is wired with.
type Services struct {
	AuthService     AuthService
	VaultService    VaultService
	SettingsService SettingsService
	ClientService   ClientService
	DomainService   DomainService
	FinanceService  FinanceService
	ProjectService  ProjectService
	AuditService    AuditService
}

// NewServices wires all services over the repositories. The vault cipher is
// built from the configured key; an empty key defers the failure to the
// first encrypt or decrypt rather than refusing to start.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	cipher := crypto.NewVaultCipher(cfg.App.VaultCipherKey)
	prober := NewRDAPProber(cfg.Workers.RDAPBaseURL, cfg.Server.RequestTimeout)

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.App, logger),
		VaultService:    NewVaultService(repositories.CredentialRepository, repositories.AuditRepository, cipher, logger),
		SettingsService: NewSettingsService(repositories.SettingsRepository, repositories.AuditRepository, crypto.NewPINHasher(), logger),
		ClientService:   NewClientService(repositories.ClientRepository, logger),
		DomainService:   NewDomainService(repositories.DomainRepository, prober, logger),
		FinanceService:  NewFinanceService(repositories.FinanceRepository, logger),
		ProjectService:  NewProjectService(repositories.ProjectRepository, logger),
		AuditService:    NewAuditService(repositories.AuditRepository, logger),
	}
}
