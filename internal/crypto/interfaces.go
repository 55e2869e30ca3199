// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package crypto implements the vault's cryptographic primitives: the
// symmetric cipher protecting credential values at rest, and the salted
// key-derivation used for PIN verification.
package crypto

// VaultCipher encrypts and decrypts credential values with a single
// process-wide key taken from configuration. Both operations are pure
// functions over strings; all nonce management is internal to the blob
// encoding.
type VaultCipher interface {
	// Encrypt returns the base64 ciphertext blob for plaintext.
	// Fails with [ErrNoCipherKey] when no key is configured, and with
	// [ErrEncryptionFailed] wrapping the underlying cipher failure
	// otherwise.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Fails with [ErrNoCipherKey] when no key is
	// configured, and with [ErrDecryptionFailed] on a wrong key or a
	// corrupted/foreign blob.
	Decrypt(ciphertext string) (string, error)
}

// PINHasher derives and verifies the stored form of the vault PIN. The
// clear PIN is never persisted; only the salted digest and the salt are.
type PINHasher interface {
	// Hash derives a digest for pin under a fresh random salt. Both return
	// values are base64 (standard encoding).
	Hash(pin string) (digest, salt string, err error)

	// Verify re-derives the digest for pin under the stored salt and
	// compares it in constant time. Malformed inputs read as false.
	Verify(pin, digest, salt string) bool
}
