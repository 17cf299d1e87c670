// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) AddUserWorkspace(ctx context.Context, userID string, m types.UserMembership) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddUserWorkspace")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_workspaces").
		Columns("user_id", "workspace_id", "role", "joined_at").
		Values(userID, m.WorkspaceID, m.Role, m.JoinedAt.UTC()).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "failed to add user membership")
	}

	return nil
}

// GetUserWorkspaces returns the memberships and current selection of a user.
// A user unknown to the store has no memberships and no selection.
func (s *Storage) GetUserWorkspaces(ctx context.Context, userID string) (*types.UserWorkspaces, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserWorkspaces")
	defer span.End()

	uw := &types.UserWorkspaces{
		UserID:      userID,
		Memberships: make([]types.UserMembership, 0),
	}

	rows, err := s.db.Statement(ctx).
		Select("workspace_id", "role", "joined_at").
		From("user_workspaces").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("joined_at", "workspace_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m types.UserMembership
		if err := rows.Scan(&m.WorkspaceID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user membership: %w", err)
		}
		uw.Memberships = append(uw.Memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	var current sql.NullString
	err = s.db.Statement(ctx).
		Select("current_workspace_id").
		From("users").
		Where(sq.Eq{"id": userID}).
		QueryRowContext(ctx).
		Scan(&current)

	if err != nil && !isNoRows(err) {
		return nil, fmt.Errorf("failed to get current workspace: %w", err)
	}

	if current.Valid {
		uw.CurrentWorkspaceID = &current.String
	}

	return uw, nil
}

// SetCurrentWorkspace upserts the user's active workspace selection.
func (s *Storage) SetCurrentWorkspace(ctx context.Context, userID, workspaceID string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCurrentWorkspace")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "current_workspace_id", "updated_at").
		Values(userID, workspaceID, now.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET current_workspace_id = excluded.current_workspace_id, updated_at = excluded.updated_at").
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "failed to set current workspace")
	}

	return nil
}
