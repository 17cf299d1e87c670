// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

type Service struct {
	workspaces WorkspaceCreatorInterface
	tracer     tracing.TracingInterface
	monitor    monitoring.MonitorInterface
	logger     logging.LoggerInterface
}

func NewService(
	workspaces WorkspaceCreatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		workspaces: workspaces,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// HandleRegistration provisions the personal workspace of a new identity.
// Redelivered hooks are acknowledged without creating a second workspace,
// a nil workspace is returned in that case.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" || email == "" {
		return nil, fmt.Errorf("%w: identity ID or email is empty", types.ErrInvalidInput)
	}

	existing, err := s.workspaces.ListUserWorkspaces(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	if len(existing.Memberships) > 0 {
		s.logger.Infof("identity %s already belongs to %d workspaces, skipping provisioning", identityID, len(existing.Memberships))
		return nil, nil
	}

	ws, err := s.workspaces.CreateWorkspace(ctx, fmt.Sprintf("%s's Workspace", email), identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.logger.Infof("Successfully provisioned workspace %s for user %s", ws.ID, identityID)

	return ws, nil
}
