// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Account password hashing. The stored verifier is a self-contained
// "salt$digest" pair (both base64), derived with the same Argon2id
// parameters the PIN hasher uses.
const (
	passwordArgonTime    = 1
	passwordArgonMemory  = 64 * 1024
	passwordArgonThreads = 4
	passwordArgonKeyLen  = 32
)

// HashPassword derives the stored verifier for an account password under a
// fresh 16-byte random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read password salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, passwordArgonTime, passwordArgonMemory, passwordArgonThreads, passwordArgonKeyLen)

	return base64.StdEncoding.EncodeToString(salt) + "$" + base64.StdEncoding.EncodeToString(digest), nil
}

// VerifyPassword re-derives the digest for password under the salt embedded
// in encoded and compares in constant time. Malformed verifiers read as a
// mismatch.
func VerifyPassword(password, encoded string) bool {
	saltPart, digestPart, found := strings.Cut(encoded, "$")
	if !found {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(saltPart)
	if err != nil {
		return false
	}
	wantDigest, err := base64.StdEncoding.DecodeString(digestPart)
	if err != nil {
		return false
	}

	gotDigest := argon2.IDKey([]byte(password), salt, passwordArgonTime, passwordArgonMemory, passwordArgonThreads, passwordArgonKeyLen)

	return subtle.ConstantTimeCompare(wantDigest, gotDigest) == 1
}
