// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// auditService reads the append-only trail back out. Writes happen inside
// the vault and settings services.
type auditService struct {
	audit  store.AuditRepository
	logger *logger.Logger
}

// NewAuditService constructs an AuditService.
func NewAuditService(audit store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		audit:  audit,
		logger: logger,
	}
}

// ListAuditEvents returns the user's newest events first.
func (a *auditService) ListAuditEvents(ctx context.Context, userID int64, limit int) ([]models.AuditEvent, error) {
	events, err := a.audit.ListAuditEvents(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit list ended with error: %w", err)
	}

	return events, nil
}
