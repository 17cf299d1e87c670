// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/invites"
	"github.com/canonical/workspace-service/pkg/webhooks"
	"github.com/canonical/workspace-service/pkg/workspaces"
)

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	inviteService := invites.NewMockServiceInterface(ctrl)
	workspaceService := workspaces.NewMockServiceInterface(ctrl)
	webhookService := webhooks.NewMockServiceInterface(ctrl)
	authorizer := authorization.NewMockAuthorizerInterface(ctrl)

	router := NewRouter(
		inviteService,
		workspaceService,
		webhookService,
		authorizer,
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		nil,
		tracer,
		monitor,
		logger,
	)

	inviteService.EXPECT().ValidateInvite(gomock.Any(), "code-1").Return(&types.InviteValidation{Valid: true}, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		identity       string
		expectedStatus int
	}{
		{name: "status is public", method: http.MethodGet, path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "metrics are public", method: http.MethodGet, path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "api requires identity", method: http.MethodGet, path: "/api/v0/me/workspaces", expectedStatus: http.StatusUnauthorized},
		{name: "authenticated api", method: http.MethodGet, path: "/api/v0/invites/code-1", identity: "user-1", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v0/unknown", identity: "user-1", expectedStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			if test.identity != "" {
				req.Header.Set(identity.HeaderName, test.identity)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
		})
	}
}
