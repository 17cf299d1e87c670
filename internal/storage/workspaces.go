// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace ID: %w", err)
	}

	created := &types.Workspace{
		ID:        id.String(),
		Name:      w.Name,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt.UTC(),
		Members:   make([]types.Member, 0),
	}

	_, err = s.db.Statement(ctx).
		Insert("workspaces").
		Columns("id", "name", "owner_id", "created_at").
		Values(created.ID, created.Name, created.OwnerID, created.CreatedAt).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert workspace")
	}

	return created, nil
}

// GetWorkspaceByID returns the workspace with its member list.
func (s *Storage) GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceByID")
	defer span.End()

	var w types.Workspace
	err := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "created_at").
		From("workspaces").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&w.ID, &w.Name, &w.OwnerID, &w.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	members, err := s.ListMembersByWorkspaceID(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Members = members

	return &w, nil
}

func (s *Storage) ListMembersByWorkspaceID(ctx context.Context, workspaceID string) ([]types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByWorkspaceID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id", "role", "joined_at").
		From("workspace_members").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("joined_at", "user_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]types.Member, 0)
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) AddWorkspaceMember(ctx context.Context, workspaceID string, m types.Member) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddWorkspaceMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("workspace_members").
		Columns("workspace_id", "user_id", "role", "joined_at").
		Values(workspaceID, m.UserID, m.Role, m.JoinedAt.UTC()).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "failed to add workspace member")
	}

	return nil
}
