// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/types"
)

var inviteColumns = []string{
	"code",
	"workspace_id",
	"created_by",
	"expires_at",
	"max_uses",
	"used_count",
	"active",
	"version",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(...any) error
}

func scanInvite(row rowScanner) (*types.Invite, error) {
	var i types.Invite
	var maxUses sql.NullInt64

	if err := row.Scan(
		&i.Code,
		&i.WorkspaceID,
		&i.CreatedBy,
		&i.ExpiresAt,
		&maxUses,
		&i.UsedCount,
		&i.Active,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if maxUses.Valid {
		v := int(maxUses.Int64)
		i.MaxUses = &v
	}
	i.UsedBy = make([]string, 0)

	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	var maxUses sql.NullInt64
	if invite.MaxUses != nil {
		maxUses = sql.NullInt64{Int64: int64(*invite.MaxUses), Valid: true}
	}

	_, err := s.db.Statement(ctx).
		Insert("invites").
		Columns(inviteColumns...).
		Values(
			invite.Code,
			invite.WorkspaceID,
			invite.CreatedBy,
			invite.ExpiresAt.UTC(),
			maxUses,
			0,
			true,
			0,
			invite.CreatedAt.UTC(),
			invite.CreatedAt.UTC(),
		).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert invite")
	}

	return s.GetInviteByCode(ctx, invite.Code)
}

// GetInviteByCode returns the invite together with the users who redeemed it.
func (s *Storage) GetInviteByCode(ctx context.Context, code string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByCode")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(sq.Eq{"code": code}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	redemptions, err := s.listRedemptions(ctx, invite.Code)
	if err != nil {
		return nil, err
	}
	invite.UsedBy = redemptions[invite.Code]

	return invite, nil
}

func (s *Storage) ListInvitesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByWorkspaceID")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("invites").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC", "code").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]*types.Invite, 0)
	codes := make([]string, 0)
	for rows.Next() {
		invite, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, invite)
		codes = append(codes, invite.Code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if len(codes) == 0 {
		return invites, nil
	}

	redemptions, err := s.listRedemptions(ctx, codes...)
	if err != nil {
		return nil, err
	}

	for _, invite := range invites {
		if usedBy, ok := redemptions[invite.Code]; ok {
			invite.UsedBy = usedBy
		}
	}

	return invites, nil
}

// ConsumeInvite records one use of the invite by userID. The update only
// applies when the invite still carries the version the caller read, is
// active, has room left under its cap and has not been redeemed by userID;
// otherwise ErrConflict is returned and nothing is written.
func (s *Storage) ConsumeInvite(ctx context.Context, code, userID string, version int64, now time.Time) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("used_count", sq.Expr("used_count + 1")).
		Set("version", sq.Expr("version + 1")).
		Set("active", sq.Expr("CASE WHEN max_uses IS NOT NULL AND used_count + 1 >= max_uses THEN ? ELSE active END", false)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"code": code, "version": version, "active": true}).
		Where(sq.Expr("(max_uses IS NULL OR used_count < max_uses)")).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM invite_redemptions r WHERE r.invite_code = invites.code AND r.user_id = ?)", userID)).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapWriteError(err, "failed to consume invite")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrConflict
	}

	_, err = s.db.Statement(ctx).
		Insert("invite_redemptions").
		Columns("invite_code", "user_id", "redeemed_at").
		Values(code, userID, now.UTC()).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("invite already redeemed by user: %w", ErrConflict)
		}
		return nil, wrapWriteError(err, "failed to record redemption")
	}

	return s.GetInviteByCode(ctx, code)
}

// DeactivateInvite revokes an invite, it is never deleted.
func (s *Storage) DeactivateInvite(ctx context.Context, code string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("active", false).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"code": code}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "failed to deactivate invite")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) listRedemptions(ctx context.Context, codes ...string) (map[string][]string, error) {
	rows, err := s.db.Statement(ctx).
		Select("invite_code", "user_id").
		From("invite_redemptions").
		Where(sq.Eq{"invite_code": codes}).
		OrderBy("redeemed_at", "user_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	defer rows.Close()

	redemptions := make(map[string][]string, len(codes))
	for _, code := range codes {
		redemptions[code] = make([]string, 0)
	}

	for rows.Next() {
		var code, userID string
		if err := rows.Scan(&code, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan redemption: %w", err)
		}
		redemptions[code] = append(redemptions[code], userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return redemptions, nil
}
