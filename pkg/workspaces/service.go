// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const maxNameLength = 128

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	authz   AuthorizerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateWorkspace stores a workspace with ownerID as its first member and
// selects it as the owner's current workspace when they have none yet.
func (s *Service) CreateWorkspace(ctx context.Context, name, ownerID string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.CreateWorkspace")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" || ownerID == "" {
		return nil, fmt.Errorf("%w: name and owner are required", types.ErrInvalidInput)
	}

	if len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name longer than %d characters", types.ErrInvalidInput, maxNameLength)
	}

	var workspace *types.Workspace

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		now := s.now().UTC()

		ws, err := s.storage.CreateWorkspace(ctx, &types.Workspace{Name: name, OwnerID: ownerID, CreatedAt: now})
		if err != nil {
			return err
		}

		owner := types.Member{UserID: ownerID, Role: types.RoleOwner, JoinedAt: now}
		if err := s.storage.AddWorkspaceMember(ctx, ws.ID, owner); err != nil {
			return err
		}

		if err := s.storage.AddUserWorkspace(ctx, ownerID, types.UserMembership{WorkspaceID: ws.ID, Role: types.RoleOwner, JoinedAt: now}); err != nil {
			return err
		}

		uw, err := s.storage.GetUserWorkspaces(ctx, ownerID)
		if err != nil {
			return err
		}

		if uw.CurrentWorkspaceID == nil {
			if err := s.storage.SetCurrentWorkspace(ctx, ownerID, ws.ID, now); err != nil {
				return err
			}
		}

		ws.Members = append(ws.Members, owner)
		workspace = ws

		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to create workspace for %s: %v", ownerID, err)
		return nil, storageError(err)
	}

	if err := s.authz.AssignWorkspaceOwner(ctx, workspace.ID, ownerID); err != nil {
		s.logger.Errorf("failed to assign owner relation on workspace %s: %v", workspace.ID, err)
	}

	s.logger.Infof("workspace %s created by %s", workspace.ID, ownerID)

	return workspace, nil
}

func (s *Service) GetWorkspace(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.GetWorkspace")
	defer span.End()

	ws, err := s.storage.GetWorkspaceByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.ErrWorkspaceNotFound
	}

	if err != nil {
		return nil, storageError(err)
	}

	return ws, nil
}

func (s *Service) ListUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.ListUserWorkspaces")
	defer span.End()

	uw, err := s.storage.GetUserWorkspaces(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}

	return uw, nil
}

// SwitchWorkspace makes workspaceID the user's current workspace, it must be one they joined
func (s *Service) SwitchWorkspace(ctx context.Context, userID, workspaceID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.SwitchWorkspace")
	defer span.End()

	if userID == "" || workspaceID == "" {
		return "", fmt.Errorf("%w: user and workspace are required", types.ErrInvalidInput)
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		uw, err := s.storage.GetUserWorkspaces(ctx, userID)
		if err != nil {
			return err
		}

		if !uw.HasMembership(workspaceID) {
			return types.ErrNotAMember
		}

		return s.storage.SetCurrentWorkspace(ctx, userID, workspaceID, s.now().UTC())
	})

	if err != nil {
		return "", storageError(err)
	}

	return workspaceID, nil
}

func storageError(err error) error {
	switch {
	case types.IsDomainError(err):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return fmt.Errorf("%w: %v", types.ErrWorkspaceNotFound, err)
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %v", types.ErrConflict, err)
	}

	return fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
}

func NewService(storage StorageInterface, tx TxRunnerInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
