// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	CreateWorkspace(ctx context.Context, name, ownerID string) (*types.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*types.Workspace, error)
	ListUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error)
	SwitchWorkspace(ctx context.Context, userID, workspaceID string) (string, error)
}

type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	AddWorkspaceMember(ctx context.Context, workspaceID string, m types.Member) error

	AddUserWorkspace(ctx context.Context, userID string, m types.UserMembership) error
	GetUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error)
	SetCurrentWorkspace(ctx context.Context, userID, workspaceID string, now time.Time) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	AssignWorkspaceOwner(ctx context.Context, workspaceID, userID string) error
	CanViewWorkspace(ctx context.Context, workspaceID, userID string) (bool, error)
}
