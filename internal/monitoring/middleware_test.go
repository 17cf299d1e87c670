// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workspace-service/internal/logging"
)

type recordingMonitor struct {
	NoopMonitor

	tags []map[string]string
}

func (m *recordingMonitor) SetResponseTimeMetric(tags map[string]string, _ float64) error {
	m.tags = append(m.tags, tags)
	return nil
}

func TestMiddleware_ResponseTime(t *testing.T) {
	monitor := &recordingMonitor{}

	router := chi.NewMux()
	router.Use(NewMiddleware(monitor, logging.NewNoopLogger()).ResponseTime())
	router.Get("/api/v0/invites/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/invites/abc123", nil))

	if len(monitor.tags) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(monitor.tags))
	}

	tags := monitor.tags[0]
	if tags["route"] != "GET/api/v0/invites/{code}" {
		t.Errorf("expected route pattern label, got %q", tags["route"])
	}
	if tags["status"] != "410" {
		t.Errorf("expected status label 410, got %q", tags["status"])
	}
}
