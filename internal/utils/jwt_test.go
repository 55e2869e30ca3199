// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("agencydesk", 42, time.Hour, "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "secret"},
		{name: "zero duration", issuer: "agencydesk", duration: 0, signKey: "secret"},
		{name: "empty sign key", issuer: "agencydesk", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 42, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("agencydesk", 42, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "agencydesk")

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("agencydesk", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-secret", "agencydesk")

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("somebody-else", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "agencydesk")

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("agencydesk", 42, time.Nanosecond, "secret")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "agencydesk")

	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	require.Error(t, err)
}
