// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultCipher_RoundTrip(t *testing.T) {
	c := NewVaultCipher("test-passphrase")

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "empty string", plaintext: ""},
		{name: "simple password", plaintext: "Sn1per#2024"},
		{name: "unicode", plaintext: "пароль-秘密-🔑"},
		{name: "json field array", plaintext: `[{"key":"client_id","value":"abc"},{"key":"client_secret","value":"xyz"}]`},
		{name: "long value", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := c.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, ciphertext)

			plaintext, err := c.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, plaintext)
		})
	}
}

func TestVaultCipher_CiphertextNotHumanReadable(t *testing.T) {
	c := NewVaultCipher("test-passphrase")

	ciphertext, err := c.Encrypt("Sn1per#2024")
	require.NoError(t, err)

	assert.NotContains(t, ciphertext, "Sn1per")

	// The blob must be valid base64 of at least nonce + tag.
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	assert.Greater(t, len(blob), 12+16)
}

func TestVaultCipher_NonDeterministicNonce(t *testing.T) {
	c := NewVaultCipher("test-passphrase")

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVaultCipher_WrongKey(t *testing.T) {
	ciphertext, err := NewVaultCipher("key-one").Encrypt("secret value")
	require.NoError(t, err)

	_, err = NewVaultCipher("key-two").Decrypt(ciphertext)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestVaultCipher_NoKeyConfigured(t *testing.T) {
	c := NewVaultCipher("")

	_, err := c.Encrypt("anything")
	assert.ErrorIs(t, err, ErrNoCipherKey)

	_, err = c.Decrypt("anything")
	assert.ErrorIs(t, err, ErrNoCipherKey)
}

func TestVaultCipher_CorruptedCiphertext(t *testing.T) {
	c := NewVaultCipher("test-passphrase")

	ciphertext, err := c.Encrypt("secret value")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF
	corrupted := base64.StdEncoding.EncodeToString(blob)

	_, err = c.Decrypt(corrupted)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestVaultCipher_MalformedBlobs(t *testing.T) {
	c := NewVaultCipher("test-passphrase")

	_, err := c.Decrypt("%%% not base64 %%%")
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	tooShort := base64.StdEncoding.EncodeToString([]byte("short"))
	_, err = c.Decrypt(tooShort)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
