// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	_, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
