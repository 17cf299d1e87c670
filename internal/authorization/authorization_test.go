// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func newTestAuthorizer(ctrl *gomock.Controller) (*Authorizer, *MockAuthzClientInterface, *MockTracingInterface) {
	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	logger := logging.NewNoopLogger()

	return NewAuthorizer(mockClient, mockTracer, monitoring.NewNoopMonitor("test", logger), logger), mockClient, mockTracer
}

func expectSpan(mockTracer *MockTracingInterface, names ...string) {
	for _, name := range names {
		mockTracer.EXPECT().Start(gomock.Any(), name).
			Return(context.Background(), trace.SpanFromContext(context.Background()))
	}
}

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "member"
	object := "workspace:456"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", "owner", "workspace:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples[0]).Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples[0]).Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples[0]).Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockClient, mockTracer := newTestAuthorizer(ctrl)

			expectSpan(mockTracer, "authorization.Authorizer.Check")
			tc.setupMocks(mockClient)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - models match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "error - models differ",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "error - compare fails",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, errors.New("unreachable"))
			},
			expectedErr: errors.New("unreachable"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockClient, mockTracer := newTestAuthorizer(ctrl)

			expectSpan(mockTracer, "authorization.Authorizer.ValidateModel")
			tc.setupMocks(mockClient)

			err := a.ValidateModel(context.Background())

			if tc.expectedErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && (err == nil || err.Error() != tc.expectedErr.Error()) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_AssignWorkspaceRelations(t *testing.T) {
	workspaceID := "ws-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		span        string
		relation    string
		call        func(*Authorizer) error
		writeErr    error
		expectedErr bool
	}{
		{
			name:     "owner success",
			span:     "authorization.Authorizer.AssignWorkspaceOwner",
			relation: OWNER_RELATION,
			call: func(a *Authorizer) error {
				return a.AssignWorkspaceOwner(context.Background(), workspaceID, userID)
			},
		},
		{
			name:     "owner write error",
			span:     "authorization.Authorizer.AssignWorkspaceOwner",
			relation: OWNER_RELATION,
			call: func(a *Authorizer) error {
				return a.AssignWorkspaceOwner(context.Background(), workspaceID, userID)
			},
			writeErr:    errors.New("write error"),
			expectedErr: true,
		},
		{
			name:     "member success",
			span:     "authorization.Authorizer.AssignWorkspaceMember",
			relation: MEMBER_RELATION,
			call: func(a *Authorizer) error {
				return a.AssignWorkspaceMember(context.Background(), workspaceID, userID)
			},
		},
		{
			name:     "member write error",
			span:     "authorization.Authorizer.AssignWorkspaceMember",
			relation: MEMBER_RELATION,
			call: func(a *Authorizer) error {
				return a.AssignWorkspaceMember(context.Background(), workspaceID, userID)
			},
			writeErr:    errors.New("write error"),
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockClient, mockTracer := newTestAuthorizer(ctrl)

			expectSpan(mockTracer, tc.span)
			mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), tc.relation, WorkspaceTuple(workspaceID)).Return(tc.writeErr)

			err := tc.call(a)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_Permissions(t *testing.T) {
	workspaceID := "ws-123"
	userID := "user-456"

	testCases := []struct {
		name           string
		span           string
		permission     string
		call           func(*Authorizer) (bool, error)
		allowed        bool
		checkErr       error
		expectedResult bool
		expectedErr    bool
	}{
		{
			name:       "can manage invites - allowed",
			span:       "authorization.Authorizer.CanManageInvites",
			permission: CAN_INVITE_PERMISSION,
			call: func(a *Authorizer) (bool, error) {
				return a.CanManageInvites(context.Background(), workspaceID, userID)
			},
			allowed:        true,
			expectedResult: true,
		},
		{
			name:       "can manage invites - denied",
			span:       "authorization.Authorizer.CanManageInvites",
			permission: CAN_INVITE_PERMISSION,
			call: func(a *Authorizer) (bool, error) {
				return a.CanManageInvites(context.Background(), workspaceID, userID)
			},
		},
		{
			name:       "can view workspace - allowed",
			span:       "authorization.Authorizer.CanViewWorkspace",
			permission: CAN_VIEW_PERMISSION,
			call: func(a *Authorizer) (bool, error) {
				return a.CanViewWorkspace(context.Background(), workspaceID, userID)
			},
			allowed:        true,
			expectedResult: true,
		},
		{
			name:       "can view workspace - check error",
			span:       "authorization.Authorizer.CanViewWorkspace",
			permission: CAN_VIEW_PERMISSION,
			call: func(a *Authorizer) (bool, error) {
				return a.CanViewWorkspace(context.Background(), workspaceID, userID)
			},
			checkErr:    errors.New("check error"),
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockClient, mockTracer := newTestAuthorizer(ctrl)

			expectSpan(mockTracer, tc.span, "authorization.Authorizer.Check")
			mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), tc.permission, WorkspaceTuple(workspaceID)).Return(tc.allowed, tc.checkErr)

			result, err := tc.call(a)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}
