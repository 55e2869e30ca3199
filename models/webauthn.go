// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// WebAuthnCredential is one registered platform-authenticator credential.
// Only public material is stored; private keys never leave the platform
// authenticator. Possession of a row here gates nothing but the session
// lock flag — the vault cipher key remains the encryption boundary.
type WebAuthnCredential struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	CredentialID []byte    `json:"credential_id"`
	PublicKey    []byte    `json:"public_key"`
	SignCount    uint32    `json:"sign_count"`
	AAGUID       []byte    `json:"aaguid,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing WebAuthnCredential.
func (c WebAuthnCredential) TableName() string {
	return "webauthn_credentials"
}
