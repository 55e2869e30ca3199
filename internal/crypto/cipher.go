// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// vaultCipher is the private implementation of [VaultCipher]. The AES-256
// key is the SHA-256 digest of the configured passphrase, computed once on
// first use.
type vaultCipher struct {
	passphrase string
}

// NewVaultCipher constructs a [VaultCipher] keyed by the given passphrase.
// An empty passphrase is legal at construction time; the missing key
// surfaces as [ErrNoCipherKey] on the first Encrypt or Decrypt call.
func NewVaultCipher(passphrase string) VaultCipher {
	return &vaultCipher{passphrase: passphrase}
}

// gcm builds the AES-256-GCM AEAD for the configured passphrase.
func (v *vaultCipher) gcm() (cipher.AEAD, error) {
	if v.passphrase == "" {
		return nil, ErrNoCipherKey
	}

	key := sha256.Sum256([]byte(v.passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// Encrypt implements [VaultCipher]. The output blob is
// base64(nonce (12 bytes) ‖ ciphertext), standard encoding, so that Decrypt
// can locate the nonce without any side channel.
func (v *vaultCipher) Encrypt(plaintext string) (string, error) {
	gcm, err := v.gcm()
	if err != nil {
		if err == ErrNoCipherKey {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryptionFailed, err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [VaultCipher]. It base64-decodes the blob, splits out
// the nonce, and decrypts with tag verification. An authentication failure
// almost always means the ciphertext was produced under a different key.
func (v *vaultCipher) Decrypt(ciphertext string) (string, error) {
	gcm, err := v.gcm()
	if err != nil {
		if err == ErrNoCipherKey {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
