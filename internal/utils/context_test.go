// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-session-auth/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionContext_Success(t *testing.T) {
	sess := models.NewSessionContext("cookie-value")
	ctx := WithSessionContext(context.Background(), sess)

	got, ok := GetSessionContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != sess {
		t.Error("expected the same session context pointer")
	}
	if got.Token != "cookie-value" {
		t.Errorf("expected token 'cookie-value', got '%s'", got.Token)
	}
}

func TestGetSessionContext_Missing(t *testing.T) {
	got, ok := GetSessionContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != nil {
		t.Error("expected nil session context")
	}
}

func TestGetSessionContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	_, ok := GetSessionContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionContext_NilPointer(t *testing.T) {
	var sess *models.SessionContext
	ctx := context.WithValue(context.Background(), SessionCtxKey, sess)

	_, ok := GetSessionContext(ctx)

	if ok {
		t.Fatal("expected ok=false for nil pointer, got true")
	}
}
