// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatalf("expected a context")
	}
	if span.SpanContext().IsValid() {
		t.Errorf("expected noop span to carry an invalid span context")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "collector:4317", "", logging.NewNoopLogger())

	if !cfg.Enabled || cfg.OtelGRPCEndpoint != "collector:4317" || cfg.OtelHTTPEndpoint != "" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestMiddleware_OpenTelemetry(t *testing.T) {
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logging.NewNoopLogger()), logging.NewNoopLogger())

	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}
