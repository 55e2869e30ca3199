// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import "errors"

var (
	// ErrNoCipherKey is returned when an encrypt or decrypt operation is
	// attempted without a configured vault cipher key. The key's absence is
	// a configuration error raised lazily on first use, not at startup.
	ErrNoCipherKey = errors.New("vault cipher key is not configured")

	// ErrEncryptionFailed wraps an underlying cipher failure during encrypt.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when a ciphertext blob cannot be
	// decrypted: wrong key, truncated blob, or corrupted/foreign ciphertext.
	// AES-GCM tag verification detects all three, so there is no separate
	// integrity heuristic.
	ErrDecryptionFailed = errors.New("decryption failed")
)
