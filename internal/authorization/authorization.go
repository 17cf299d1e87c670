// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/openfga"
	"github.com/canonical/workspace-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := v0AuthzModel.GetModel()
	if model == nil {
		return ErrInvalidAuthModel
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignWorkspaceOwner(ctx context.Context, workspaceId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), OWNER_RELATION, WorkspaceTuple(workspaceId))
}

func (a *Authorizer) AssignWorkspaceMember(ctx context.Context, workspaceId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), MEMBER_RELATION, WorkspaceTuple(workspaceId))
}

func (a *Authorizer) CanManageInvites(ctx context.Context, workspaceId, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageInvites")
	defer span.End()

	return a.check(ctx, userId, CAN_INVITE_PERMISSION, workspaceId)
}

func (a *Authorizer) CanViewWorkspace(ctx context.Context, workspaceId, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanViewWorkspace")
	defer span.End()

	return a.check(ctx, userId, CAN_VIEW_PERMISSION, workspaceId)
}

func (a *Authorizer) check(ctx context.Context, userId, permission, workspaceId string) (bool, error) {
	allowed, err := a.Check(ctx, UserTuple(userId), permission, WorkspaceTuple(workspaceId))
	if err != nil {
		return false, err
	}

	resource := fmt.Sprintf("%s#%s", WorkspaceTuple(workspaceId), permission)
	if allowed {
		a.logger.Security().AuthzSuccess(userId, resource)
	} else {
		a.logger.Security().AuthzFailure(userId, resource)
	}

	return allowed, nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
