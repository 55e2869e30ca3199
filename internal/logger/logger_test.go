// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RoleField(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	buf := new(bytes.Buffer)
	scoped := Logger{log.Output(buf)}
	scoped.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "ts")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must stay disabled.
	log.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestGetChildLogger_Independent(t *testing.T) {
	buf := new(bytes.Buffer)
	parent := &Logger{zerolog.New(buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "child-only")
	})

	parent.Info().Msg("from parent")
	assert.NotContains(t, buf.String(), "child-only")

	buf.Reset()
	child.Info().Msg("from child")
	assert.Contains(t, buf.String(), "child-only")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	attached := zerolog.New(buf).With().Str("marker", "attached").Logger()

	ctx := attached.WithContext(context.Background())
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("via context")
	assert.Contains(t, buf.String(), "attached")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	attached := zerolog.New(buf).With().Str("marker", "request").Logger()

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)

	got.Info().Msg("via request")
	assert.Contains(t, buf.String(), "request")
}
