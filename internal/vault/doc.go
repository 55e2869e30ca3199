// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package vault implements the credential vault's protection flow: the
// ephemeral session lock state, the PIN gate with its failure lockout, and
// the platform-authenticator (biometric) gate.
//
// Both gates are convenience unlocks over the session flag only. Neither
// produces or unwraps key material; the vault cipher key configured on the
// server remains the sole encryption boundary.
package vault
