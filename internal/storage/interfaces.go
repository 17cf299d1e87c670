// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	ListMembersByWorkspaceID(ctx context.Context, workspaceID string) ([]types.Member, error)
	AddWorkspaceMember(ctx context.Context, workspaceID string, m types.Member) error

	AddUserWorkspace(ctx context.Context, userID string, m types.UserMembership) error
	GetUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error)
	SetCurrentWorkspace(ctx context.Context, userID, workspaceID string, now time.Time) error

	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByCode(ctx context.Context, code string) (*types.Invite, error)
	ListInvitesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Invite, error)
	ConsumeInvite(ctx context.Context, code, userID string, version int64, now time.Time) (*types.Invite, error)
	DeactivateInvite(ctx context.Context, code string, now time.Time) error
}
