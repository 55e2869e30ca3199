// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.Contains(encoded, "$"))

	assert.True(t, VerifyPassword("correct horse battery staple", encoded))
	assert.False(t, VerifyPassword("wrong password", encoded))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret", first))
	assert.True(t, VerifyPassword("secret", second))
}

func TestVerifyPassword_MalformedVerifier(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "no separator", encoded: "justonepart"},
		{name: "bad salt base64", encoded: "!!!$aGFzaA=="},
		{name: "bad digest base64", encoded: "c2FsdA==$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("secret", tt.encoded))
		})
	}
}
