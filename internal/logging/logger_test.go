// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	logger := NewLogger("DEBUG")

	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestInvalidLevel(t *testing.T) {
	logger := NewLogger("invalid")

	if logger.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("expected invalid level to fall back to error")
	}
	if !logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("expected error level to be enabled")
	}
}

func TestSecurityLogger_InviteRedeemed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSecurityLogger(zap.New(core))

	s.InviteRedeemed("user-1", "ws-1")

	entries := logs.FilterMessage("invite redeemed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["user_id"] != "user-1" || fields["workspace_id"] != "ws-1" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	logger.Infof("nothing %s", "happens")
	logger.Security().AuthzFailure("user", "workspace:1")
}
