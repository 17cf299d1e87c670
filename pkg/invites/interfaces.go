// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	GenerateInvite(ctx context.Context, workspaceID, requesterID string, expiresInDays int, maxUses *int) (*types.Invite, error)
	ValidateInvite(ctx context.Context, code string) (*types.InviteValidation, error)
	RedeemInvite(ctx context.Context, code, userID string) (*types.Workspace, error)
	GetInvite(ctx context.Context, code string) (*types.Invite, error)
	RevokeInvite(ctx context.Context, code, requesterID string) error
	ListWorkspaceInvites(ctx context.Context, workspaceID string, page, size int64) ([]*types.Invite, error)
}

// StorageInterface is the subset of internal/storage the invite flows need
type StorageInterface interface {
	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByCode(ctx context.Context, code string) (*types.Invite, error)
	ListInvitesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Invite, error)
	ConsumeInvite(ctx context.Context, code, userID string, version int64, now time.Time) (*types.Invite, error)
	DeactivateInvite(ctx context.Context, code string, now time.Time) error

	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	AddWorkspaceMember(ctx context.Context, workspaceID string, m types.Member) error
	AddUserWorkspace(ctx context.Context, userID string, m types.UserMembership) error
	SetCurrentWorkspace(ctx context.Context, userID, workspaceID string, now time.Time) error
}

// TxRunnerInterface runs fn as one unit of work, rolled back on error
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	AssignWorkspaceMember(ctx context.Context, workspaceID, userID string) error
	CanManageInvites(ctx context.Context, workspaceID, userID string) (bool, error)
}

type LimiterInterface interface {
	Allow(ctx context.Context, key string) (bool, error)
}
