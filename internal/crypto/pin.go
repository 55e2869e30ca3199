// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"io"

	"golang.org/x/crypto/argon2"
)

// pinHasher is the private implementation of [PINHasher].
type pinHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPINHasher constructs a [PINHasher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPINHasher() PINHasher {
	return &pinHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Hash implements [PINHasher]. It reads a 16-byte salt from the OS CSPRNG
// and derives the digest with Argon2id.
func (p *pinHasher) Hash(pin string) (string, string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", "", err
	}

	digest := argon2.IDKey([]byte(pin), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	return base64.StdEncoding.EncodeToString(digest),
		base64.StdEncoding.EncodeToString(salt),
		nil
}

// Verify implements [PINHasher]. It re-derives the digest for pin under the
// stored salt and compares with subtle.ConstantTimeCompare. Undecodable
// digest or salt values read as a mismatch.
func (p *pinHasher) Verify(pin, digest, salt string) bool {
	wantDigest, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return false
	}

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	gotDigest := argon2.IDKey([]byte(pin), rawSalt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	return subtle.ConstantTimeCompare(wantDigest, gotDigest) == 1
}
