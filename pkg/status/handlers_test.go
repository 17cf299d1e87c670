// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func newTestMux(deps map[string]DependencyInterface) *chi.Mux {
	logger := logging.NewNoopLogger()
	mux := chi.NewMux()

	NewAPI(deps, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux
}

func TestAliveAndVersion(t *testing.T) {
	mux := newTestMux(nil)

	for _, endpoint := range []string{"/api/v0/status", "/api/v0/version"} {
		req := httptest.NewRequest(http.MethodGet, endpoint, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", endpoint, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	info := new(BuildInfo)
	if err := json.Unmarshal(w.Body.Bytes(), info); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if info.Version != version.Version {
		t.Errorf("expected version %s, got %s", version.Version, info.Version)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name           string
		deps           map[string]DependencyInterface
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "no dependencies",
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "all dependencies up",
			deps: map[string]DependencyInterface{
				"database": pingFunc(func(context.Context) error { return nil }),
				"redis":    pingFunc(func(context.Context) error { return nil }),
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "database down",
			deps: map[string]DependencyInterface{
				"database": pingFunc(func(context.Context) error { return errors.New("refused") }),
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "unavailable",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := newTestMux(test.deps)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			rs := new(Readiness)
			if err := json.Unmarshal(w.Body.Bytes(), rs); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if rs.Status != test.expectedState {
				t.Errorf("expected state %s, got %s", test.expectedState, rs.Status)
			}

			if len(rs.Dependencies) != len(test.deps) {
				t.Errorf("expected %d dependencies, got %d", len(test.deps), len(rs.Dependencies))
			}
		})
	}
}
