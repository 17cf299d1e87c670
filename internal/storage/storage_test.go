// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/migrations"
)

func newTestStorage(t *testing.T) (*Storage, *db.DBClient) {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewSQLiteClient(db.SQLiteConfig{Path: filepath.Join(t.TempDir(), "storage.db")}, tracer, monitor, logger)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	require.NoError(t, migrations.Up(context.Background(), client.DB(), db.DriverSQLite))

	return NewStorage(client, tracer, monitor, logger), client
}

func createWorkspace(t *testing.T, s *Storage, owner string) *types.Workspace {
	t.Helper()

	ws, err := s.CreateWorkspace(context.Background(), &types.Workspace{Name: owner + "'s Workspace", OwnerID: owner, CreatedAt: time.Now()})
	require.NoError(t, err)
	return ws
}

func intPtr(v int) *int { return &v }

func TestStorage_Workspaces(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	ws := createWorkspace(t, s, "owner-1")
	require.NotEmpty(t, ws.ID)

	require.NoError(t, s.AddWorkspaceMember(ctx, ws.ID, types.Member{UserID: "owner-1", Role: types.RoleOwner, JoinedAt: now}))
	require.NoError(t, s.AddWorkspaceMember(ctx, ws.ID, types.Member{UserID: "user-2", Role: types.RoleMember, JoinedAt: now.Add(time.Second)}))

	got, err := s.GetWorkspaceByID(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, ws.Name, got.Name)
	require.Equal(t, "owner-1", got.OwnerID)
	require.Len(t, got.Members, 2)
	require.Equal(t, "owner-1", got.Members[0].UserID)
	require.Equal(t, types.RoleOwner, got.Members[0].Role)
	require.WithinDuration(t, now, got.Members[0].JoinedAt, time.Second)

	err = s.AddWorkspaceMember(ctx, ws.ID, types.Member{UserID: "user-2", Role: types.RoleMember, JoinedAt: now})
	require.ErrorIs(t, err, ErrDuplicateKey)

	err = s.AddWorkspaceMember(ctx, "missing", types.Member{UserID: "user-3", Role: types.RoleMember, JoinedAt: now})
	require.ErrorIs(t, err, ErrForeignKeyViolation)

	_, err = s.GetWorkspaceByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_UserWorkspaces(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	uw, err := s.GetUserWorkspaces(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, uw.Memberships)
	require.Nil(t, uw.CurrentWorkspaceID)

	first := createWorkspace(t, s, "owner-1")
	second := createWorkspace(t, s, "owner-2")

	require.NoError(t, s.AddUserWorkspace(ctx, "user-1", types.UserMembership{WorkspaceID: first.ID, Role: types.RoleMember, JoinedAt: now}))
	require.NoError(t, s.AddUserWorkspace(ctx, "user-1", types.UserMembership{WorkspaceID: second.ID, Role: types.RoleMember, JoinedAt: now.Add(time.Second)}))
	require.ErrorIs(t, s.AddUserWorkspace(ctx, "user-1", types.UserMembership{WorkspaceID: first.ID, Role: types.RoleMember, JoinedAt: now}), ErrDuplicateKey)

	require.NoError(t, s.SetCurrentWorkspace(ctx, "user-1", first.ID, now))
	require.NoError(t, s.SetCurrentWorkspace(ctx, "user-1", second.ID, now.Add(time.Minute)))

	uw, err = s.GetUserWorkspaces(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, uw.Memberships, 2)
	require.NotNil(t, uw.CurrentWorkspaceID)
	require.Equal(t, second.ID, *uw.CurrentWorkspaceID)
}

func TestStorage_CreateAndGetInvite(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	invite := &types.Invite{
		Code:        "code-1",
		WorkspaceID: "ws-1",
		CreatedBy:   "owner-1",
		ExpiresAt:   now.Add(24 * time.Hour),
		MaxUses:     intPtr(5),
		CreatedAt:   now,
	}

	created, err := s.CreateInvite(ctx, invite)
	require.NoError(t, err)
	require.Equal(t, "code-1", created.Code)
	require.True(t, created.Active)
	require.Zero(t, created.UsedCount)
	require.Zero(t, created.Version)
	require.Empty(t, created.UsedBy)
	require.NotNil(t, created.MaxUses)
	require.Equal(t, 5, *created.MaxUses)
	require.WithinDuration(t, invite.ExpiresAt, created.ExpiresAt, time.Second)

	_, err = s.CreateInvite(ctx, invite)
	require.ErrorIs(t, err, ErrDuplicateKey)

	unlimited, err := s.CreateInvite(ctx, &types.Invite{Code: "code-2", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), CreatedAt: now.Add(time.Second)})
	require.NoError(t, err)
	require.Nil(t, unlimited.MaxUses)

	_, err = s.GetInviteByCode(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	invites, err := s.ListInvitesByWorkspaceID(ctx, "ws-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, invites, 2)
	require.Equal(t, "code-2", invites[0].Code)

	invites, err = s.ListInvitesByWorkspaceID(ctx, "ws-1", 2, 1)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, "code-1", invites[0].Code)

	invites, err = s.ListInvitesByWorkspaceID(ctx, "ws-unknown", 1, 10)
	require.NoError(t, err)
	require.Empty(t, invites)
}

func TestStorage_ConsumeInvite(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.CreateInvite(ctx, &types.Invite{Code: "code-1", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), MaxUses: intPtr(2), CreatedAt: now})
	require.NoError(t, err)

	updated, err := s.ConsumeInvite(ctx, "code-1", "user-1", 0, now)
	require.NoError(t, err)
	require.Equal(t, 1, updated.UsedCount)
	require.Equal(t, int64(1), updated.Version)
	require.True(t, updated.Active)
	require.Equal(t, []string{"user-1"}, updated.UsedBy)

	_, err = s.ConsumeInvite(ctx, "code-1", "user-2", 0, now)
	require.ErrorIs(t, err, ErrConflict, "stale version must not apply")

	_, err = s.ConsumeInvite(ctx, "code-1", "user-1", 1, now)
	require.ErrorIs(t, err, ErrConflict, "same user must not redeem twice")

	updated, err = s.ConsumeInvite(ctx, "code-1", "user-2", 1, now)
	require.NoError(t, err)
	require.Equal(t, 2, updated.UsedCount)
	require.False(t, updated.Active, "invite reaching its cap is deactivated")
	require.ElementsMatch(t, []string{"user-1", "user-2"}, updated.UsedBy)

	_, err = s.ConsumeInvite(ctx, "code-1", "user-3", 2, now)
	require.ErrorIs(t, err, ErrConflict)

	_, err = s.ConsumeInvite(ctx, "missing", "user-3", 0, now)
	require.ErrorIs(t, err, ErrConflict)
}

func TestStorage_ConsumeInviteStaleVersionWritesNothing(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.CreateInvite(ctx, &types.Invite{Code: "code-1", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), MaxUses: intPtr(1), CreatedAt: now})
	require.NoError(t, err)

	stale, err := s.GetInviteByCode(ctx, "code-1")
	require.NoError(t, err)

	_, err = s.ConsumeInvite(ctx, "code-1", "winner", stale.Version, now)
	require.NoError(t, err)

	err = client.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.ConsumeInvite(ctx, "code-1", "loser", stale.Version, now)
		return err
	})
	require.ErrorIs(t, err, ErrConflict)

	invite, err := s.GetInviteByCode(ctx, "code-1")
	require.NoError(t, err)
	require.Equal(t, 1, invite.UsedCount)
	require.Equal(t, stale.Version+1, invite.Version)
	require.False(t, invite.Active)
	require.Equal(t, []string{"winner"}, invite.UsedBy)
}

func TestStorage_DeactivateInvite(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.CreateInvite(ctx, &types.Invite{Code: "code-1", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), CreatedAt: now})
	require.NoError(t, err)

	require.NoError(t, s.DeactivateInvite(ctx, "code-1", now))

	invite, err := s.GetInviteByCode(ctx, "code-1")
	require.NoError(t, err)
	require.False(t, invite.Active)
	require.Equal(t, int64(1), invite.Version)

	require.ErrorIs(t, s.DeactivateInvite(ctx, "missing", now), ErrNotFound)
}

func TestStorage_WithTxRollsBack(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()
	boom := errors.New("boom")

	err := client.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.CreateInvite(txCtx, &types.Invite{Code: "code-1", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.GetInviteByCode(ctx, "code-1")
	require.ErrorIs(t, err, ErrNotFound)

	err = client.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.CreateInvite(txCtx, &types.Invite{Code: "code-2", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), CreatedAt: now})
		return err
	})
	require.NoError(t, err)

	_, err = s.GetInviteByCode(ctx, "code-2")
	require.NoError(t, err)
}

func TestStorage_WithTxCancelledBeforeCommit(t *testing.T) {
	s, client := newTestStorage(t)
	now := time.Now().UTC()

	ctx, cancel := context.WithCancel(context.Background())
	err := client.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.CreateInvite(txCtx, &types.Invite{Code: "code-1", WorkspaceID: "ws-1", CreatedBy: "owner-1", ExpiresAt: now.Add(time.Hour), CreatedAt: now})
		cancel()
		return err
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.GetInviteByCode(context.Background(), "code-1")
	require.ErrorIs(t, err, ErrNotFound)
}
