// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import (
	"fmt"
	"time"

	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/models"
)

// PINGate verifies accumulated PIN entries against the digest carried in the
// vault security settings, with a lockout after repeated failures.
type PINGate struct {
	hasher  crypto.PINHasher
	tracker *LockoutTracker

	digest string
	salt   string
	length int
}

// NewPINGate builds a gate over the given settings. A nil settings pointer
// or disabled PIN yields a gate whose Submit always fails with ErrPINNotSet.
func NewPINGate(hasher crypto.PINHasher, tracker *LockoutTracker, settings *models.VaultSettings) *PINGate {
	gate := &PINGate{hasher: hasher, tracker: tracker}
	if settings != nil && settings.PINEnabled {
		gate.digest = settings.PINHash
		gate.salt = settings.PINSalt
		gate.length = settings.PINLength
	}

	return gate
}

// Length is the configured PIN length. The entry surface submits as soon as
// the accumulated input reaches it.
func (g *PINGate) Length() int {
	return g.length
}

// Submit checks pin against the stored digest. A wrong PIN returns
// (false, nil) so the entry surface can flash and clear; only lockout and
// configuration problems surface as errors.
func (g *PINGate) Submit(now time.Time, pin string) (bool, error) {
	if g.digest == "" {
		return false, ErrPINNotSet
	}

	if until, locked := g.tracker.LockedUntil(now); locked {
		return false, fmt.Errorf("%w: retry after %s", ErrLockedOut, until.Sub(now).Round(time.Second))
	}

	if !g.hasher.Verify(pin, g.digest, g.salt) {
		g.tracker.RecordFailure(now)
		return false, nil
	}

	g.tracker.Reset()

	return true, nil
}

// LockedUntil reports the active lockout deadline, if any. Entry surfaces
// use it to render a retry countdown instead of accepting digits.
func (g *PINGate) LockedUntil(now time.Time) (time.Time, bool) {
	return g.tracker.LockedUntil(now)
}

// ValidatePIN checks that candidate is all digits and within the allowed
// length bounds.
func ValidatePIN(candidate string) error {
	if len(candidate) < models.MinPINLength || len(candidate) > models.MaxPINLength {
		return ErrPINLength
	}
	for _, r := range candidate {
		if r < '0' || r > '9' {
			return ErrPINLength
		}
	}

	return nil
}

// SetPIN runs the double-entry set flow: entry and confirm must match and
// pass validation, after which a fresh digest and salt are derived. The
// caller folds the result into the security settings.
func SetPIN(hasher crypto.PINHasher, entry, confirm string) (digest, salt string, err error) {
	if err = ValidatePIN(entry); err != nil {
		return "", "", err
	}
	if entry != confirm {
		return "", "", ErrPINMismatch
	}

	digest, salt, err = hasher.Hash(entry)
	if err != nil {
		return "", "", fmt.Errorf("derive PIN digest: %w", err)
	}

	return digest, salt, nil
}
