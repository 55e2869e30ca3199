// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/service"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
)

// Handler carries everything the endpoint methods need: the business
// services, the platform-authenticator gate, and the user repository the
// authenticator ceremonies resolve identities against.
type Handler struct {
	services   *service.Services
	biometrics *vault.BiometricGate
	users      store.UserRepository

	logger *logger.Logger
}

// NewHandler builds the transport handler. biometrics may be nil when no
// relying-party identity is configured; the authenticator endpoints then
// answer as unavailable.
func NewHandler(services *service.Services, biometrics *vault.BiometricGate, users store.UserRepository, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		biometrics: biometrics,
		users:      users,
		logger:     logger,
	}
}
