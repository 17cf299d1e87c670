// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

// newTestRouter serves the invite API as userID, an empty userID leaves the request anonymous
func newTestRouter(service ServiceInterface, authz AuthorizerInterface, userID string) *chi.Mux {
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != "" {
				r = r.WithContext(authentication.WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	})

	NewAPI(service, authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := struct {
		Message string `json:"message"`
	}{}

	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}

	return body.Message
}

func TestHandleCreate(t *testing.T) {
	invite := &types.Invite{
		Code:        "code-1",
		WorkspaceID: "ws-1",
		CreatedBy:   "owner-1",
		ExpiresAt:   time.Now().Add(time.Hour),
		Active:      true,
		UsedBy:      []string{"someone"},
	}

	testCases := []struct {
		name            string
		userID          string
		body            string
		setupMocks      func(*MockServiceInterface, *MockAuthorizerInterface)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "anonymous",
			body:            `{"expires_in_days": 7}`,
			setupMocks:      func(*MockServiceInterface, *MockAuthorizerInterface) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "unauthenticated",
		},
		{
			name:   "not an owner",
			userID: "member-1",
			body:   `{"expires_in_days": 7}`,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "member-1").Return(false, nil)
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "forbidden",
		},
		{
			name:   "expiry out of range",
			userID: "owner-1",
			body:   `{"expires_in_days": 45}`,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(true, nil)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid_input",
		},
		{
			name:   "malformed body",
			userID: "owner-1",
			body:   `{"expires_in_days":`,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(true, nil)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid_input",
		},
		{
			name:   "created",
			userID: "owner-1",
			body:   `{"expires_in_days": 7, "max_uses": 3}`,
			setupMocks: func(s *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(true, nil)
				s.EXPECT().GenerateInvite(gomock.Any(), "ws-1", "owner-1", 7, gomock.Any()).Return(invite, nil)
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "invite created",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			tc.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/invites", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			newTestRouter(mockService, mockAuthz, tc.userID).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}

			if msg := decodeMessage(t, w); msg != tc.expectedMessage {
				t.Errorf("expected message %q, got %q", tc.expectedMessage, msg)
			}

			if tc.expectedStatus == http.StatusCreated && strings.Contains(w.Body.String(), "someone") {
				t.Errorf("redeemers must not be exposed: %s", w.Body.String())
			}
		})
	}
}

func TestHandleRedeem(t *testing.T) {
	testCases := []struct {
		name           string
		userID         string
		serviceErr     error
		expectedStatus int
	}{
		{name: "anonymous", expectedStatus: http.StatusUnauthorized},
		{name: "redeemed", userID: "user-2", expectedStatus: http.StatusOK},
		{name: "expired", userID: "user-2", serviceErr: types.ErrInviteExpired, expectedStatus: http.StatusGone},
		{name: "exhausted", userID: "user-2", serviceErr: types.ErrInviteExhausted, expectedStatus: http.StatusGone},
		{name: "already member", userID: "user-2", serviceErr: types.ErrAlreadyMember, expectedStatus: http.StatusConflict},
		{name: "rate limited", userID: "user-2", serviceErr: types.ErrRateLimited, expectedStatus: http.StatusTooManyRequests},
		{name: "unknown failure", userID: "user-2", serviceErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)

			if tc.userID != "" {
				var ws *types.Workspace
				if tc.serviceErr == nil {
					ws = &types.Workspace{ID: "ws-1", Name: "Team"}
				}
				mockService.EXPECT().RedeemInvite(gomock.Any(), "code-1", tc.userID).Return(ws, tc.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/code-1/redeem", nil)
			w := httptest.NewRecorder()

			newTestRouter(mockService, mockAuthz, tc.userID).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	mockService.EXPECT().ValidateInvite(gomock.Any(), "code-1").Return(&types.InviteValidation{Valid: false, Reason: "invite_expired"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/invites/code-1", nil)
	w := httptest.NewRecorder()

	newTestRouter(mockService, mockAuthz, "").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := struct {
		Data types.InviteValidation `json:"data"`
	}{}

	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Data.Valid || body.Data.Reason != "invite_expired" {
		t.Errorf("unexpected validation %+v", body.Data)
	}
}

func TestHandleRevoke(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface, *MockAuthorizerInterface)
		expectedStatus int
	}{
		{
			name: "revoked",
			setupMocks: func(s *MockServiceInterface, authz *MockAuthorizerInterface) {
				s.EXPECT().GetInvite(gomock.Any(), "code-1").Return(&types.Invite{Code: "code-1", WorkspaceID: "ws-1"}, nil)
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(true, nil)
				s.EXPECT().RevokeInvite(gomock.Any(), "code-1", "owner-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "unknown code",
			setupMocks: func(s *MockServiceInterface, _ *MockAuthorizerInterface) {
				s.EXPECT().GetInvite(gomock.Any(), "code-1").Return(nil, types.ErrInviteNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "not permitted",
			setupMocks: func(s *MockServiceInterface, authz *MockAuthorizerInterface) {
				s.EXPECT().GetInvite(gomock.Any(), "code-1").Return(&types.Invite{Code: "code-1", WorkspaceID: "ws-1"}, nil)
				authz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			tc.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/invites/code-1", nil)
			w := httptest.NewRecorder()

			newTestRouter(mockService, mockAuthz, "owner-1").ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	mockAuthz.EXPECT().CanManageInvites(gomock.Any(), "ws-1", "owner-1").Return(true, nil)
	mockService.EXPECT().ListWorkspaceInvites(gomock.Any(), "ws-1", int64(2), int64(5)).Return([]*types.Invite{{Code: "a"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/workspaces/ws-1/invites?page=2&size=5", nil)
	w := httptest.NewRecorder()

	newTestRouter(mockService, mockAuthz, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := struct {
		Data []InviteResponse `json:"data"`
	}{}

	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if len(body.Data) != 1 || body.Data[0].Code != "a" {
		t.Errorf("unexpected invites %+v", body.Data)
	}
}
