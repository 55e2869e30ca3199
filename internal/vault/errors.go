// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import "errors"

var (
	// ErrBiometricUnavailable is returned from ceremonies that require at
	// least one registered platform authenticator when the user has none.
	ErrBiometricUnavailable = errors.New("no platform authenticator is available")

	// ErrPINNotSet is returned when a PIN submission arrives while the
	// security settings carry no PIN digest.
	ErrPINNotSet = errors.New("no PIN is configured")

	// ErrPINLength is returned when a candidate PIN is outside the allowed
	// 4-6 digit range or contains non-digit characters.
	ErrPINLength = errors.New("PIN must be 4 to 6 digits")

	// ErrPINMismatch is returned by the double-entry set flow when the
	// confirmation does not match the first entry.
	ErrPINMismatch = errors.New("PIN entries do not match")

	// ErrLockedOut is returned while the failure tracker holds the gate
	// closed after repeated wrong submissions.
	ErrLockedOut = errors.New("too many failed PIN attempts")

	// ErrNoPendingCeremony is returned when a finish call arrives without a
	// matching begin for the same user.
	ErrNoPendingCeremony = errors.New("no pending authenticator ceremony")
)
