// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import (
	"context"
	"sync"

	"github.com/avetrov/agencydesk/models"
)

// BiometricVerifier runs a platform-authenticator assertion ceremony for the
// current user. A declined or failed ceremony reads as (false, nil); only
// transport and protocol problems surface as errors.
type BiometricVerifier interface {
	Verify(ctx context.Context) (bool, error)
}

// Session holds the in-memory lock state of the vault for one client run.
// The state is ephemeral: nothing persists across restarts, so a fresh
// session always re-derives its lock state from the security settings.
type Session struct {
	mu sync.Mutex

	locked            bool
	biometricsEnabled bool
	verifier          BiometricVerifier
}

// NewSession builds an unlocked session. Initialize applies the stored
// security settings. verifier may be nil when no authenticator transport is
// wired; UnlockWithBiometrics then always reports false.
func NewSession(verifier BiometricVerifier) *Session {
	return &Session{verifier: verifier}
}

// Initialize derives the starting lock state from the user's security
// settings: locked exactly when a PIN is enabled. A nil settings pointer
// means protection is off and the vault starts open.
func (s *Session) Initialize(settings *models.VaultSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings == nil {
		s.locked = false
		s.biometricsEnabled = false
		return
	}

	s.locked = settings.PINEnabled
	s.biometricsEnabled = settings.BiometricsEnabled
}

// Locked reports whether credential values are currently gated.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked
}

// Lock closes the vault. Idempotent.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locked = true
}

// Unlock opens the vault after a successful PIN submission. Idempotent.
func (s *Session) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locked = false
}

// UnlockWithBiometrics attempts the platform-authenticator unlock. It
// short-circuits to false without touching the verifier when biometrics are
// disabled in the settings or no verifier is wired, so the PIN path stays
// the fallback. On a passing ceremony the session unlocks.
func (s *Session) UnlockWithBiometrics(ctx context.Context) (bool, error) {
	s.mu.Lock()
	enabled := s.biometricsEnabled
	verifier := s.verifier
	s.mu.Unlock()

	if !enabled || verifier == nil {
		return false, nil
	}

	ok, err := verifier.Verify(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.Unlock()

	return true, nil
}
