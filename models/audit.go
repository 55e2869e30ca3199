// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// Audit actions recorded for vault-affecting operations.
const (
	AuditActionCredentialCreate = "credential_create"
	AuditActionCredentialUpdate = "credential_update"
	AuditActionCredentialDelete = "credential_delete"
	AuditActionCredentialReveal = "credential_reveal"
	AuditActionSettingsUpdate   = "vault_settings_update"
	AuditActionSettingsRemove   = "vault_settings_remove"
	AuditActionUnlockFailure    = "vault_unlock_failure"
)

// AuditEvent is one appended audit trail row. Events are write-only from the
// application's point of view: they are inserted by the vault service and
// read back only by the audit list endpoint.
type AuditEvent struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	Action     string            `json:"action"`
	TargetType string            `json:"target_type,omitempty"`
	TargetID   int64             `json:"target_id,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// TableName returns the name of the database table backing AuditEvent.
func (e AuditEvent) TableName() string {
	return "audit_events"
}
