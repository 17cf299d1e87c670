// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/openfga"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/migrations"
)

func newSQLiteService(t *testing.T) *Service {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewSQLiteClient(db.SQLiteConfig{Path: filepath.Join(t.TempDir(), "workspaces.db")}, tracer, monitor, logger)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	require.NoError(t, migrations.Up(context.Background(), client.DB(), db.DriverSQLite))

	authz := authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)

	return NewService(storage.NewStorage(client, tracer, monitor, logger), client, authz, tracer, monitor, logger)
}

func TestCreateAndSwitchWorkspace(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	first, err := s.CreateWorkspace(ctx, "First", "user-1")
	require.NoError(t, err)

	second, err := s.CreateWorkspace(ctx, "Second", "user-1")
	require.NoError(t, err)

	uw, err := s.ListUserWorkspaces(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, uw.Memberships, 2)
	require.NotNil(t, uw.CurrentWorkspaceID)
	require.Equal(t, first.ID, *uw.CurrentWorkspaceID)

	current, err := s.SwitchWorkspace(ctx, "user-1", second.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, current)

	uw, err = s.ListUserWorkspaces(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, second.ID, *uw.CurrentWorkspaceID)

	_, err = s.SwitchWorkspace(ctx, "user-2", second.ID)
	require.ErrorIs(t, err, types.ErrNotAMember)

	uw, err = s.ListUserWorkspaces(ctx, "user-2")
	require.NoError(t, err)
	require.Nil(t, uw.CurrentWorkspaceID)

	ws, err := s.GetWorkspace(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "user-1", ws.OwnerID)
	require.True(t, ws.HasMember("user-1"))

	_, err = s.GetWorkspace(ctx, "missing")
	require.ErrorIs(t, err, types.ErrWorkspaceNotFound)
}
