// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

// WorkspaceCreatorInterface is the subset of the workspaces service the
// registration hook relies on.
type WorkspaceCreatorInterface interface {
	CreateWorkspace(ctx context.Context, name, ownerID string) (*types.Workspace, error)
	ListUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) (*types.Workspace, error)
}
