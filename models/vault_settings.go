// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

// VaultSettings is the per-user vault protection configuration, persisted as
// a nested object inside the user's profile metadata bag. A nil settings
// pointer means vault protection is disabled entirely (protection is opt-in).
//
// The original system stored the PIN in plaintext inside the metadata bag.
// That is deliberately not reproduced here: only the salted argon2id digest
// of the PIN is persisted, together with the salt and the configured length,
// so the clear PIN never leaves the entry surface.
type VaultSettings struct {
	// PINEnabled reports whether a PIN is configured. When true the vault
	// session starts locked.
	PINEnabled bool `json:"pin_enabled"`

	// PINHash is the base64-encoded argon2id digest of the PIN.
	PINHash string `json:"pin_hash,omitempty"`

	// PINSalt is the base64-encoded random salt used for PINHash.
	PINSalt string `json:"pin_salt,omitempty"`

	// PINLength is the configured PIN length, 4 to 6 digits. The entry
	// surface submits the accumulated input as soon as it reaches this
	// length.
	PINLength int `json:"pin_length,omitempty"`

	// BiometricsEnabled reports whether the platform-authenticator unlock
	// is offered in addition to the PIN.
	BiometricsEnabled bool `json:"biometrics_enabled"`
}

// VaultSettingsMetadataKey is the key under which VaultSettings lives inside
// the user profile metadata bag.
const VaultSettingsMetadataKey = "vault_security"

// PIN length bounds enforced when a PIN is set.
const (
	MinPINLength = 4
	MaxPINLength = 6
)
