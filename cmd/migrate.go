// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long: `Run the embedded database migrations for the workspace, membership and invite tables.
Without arguments all pending migrations are applied.`,
	Args: validMigrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		driver, _ := cmd.Flags().GetString("driver")
		format, _ := cmd.Flags().GetString("format")

		command, target := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}
		if len(args) > 1 {
			target, _ = strconv.ParseInt(args[1], 10, 64)
		}

		m, closeDB, err := newMigrator(cmd, driver, dsn, format == "json")
		if err != nil {
			return err
		}
		defer closeDB()

		return m.run(cmd.Context(), command, target)
	},
}

func validMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%s takes no version argument", args[0])
		}
	case "down":
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migration command: %q", args[0])
	}

	return nil
}

type migrator struct {
	provider *goose.Provider
	out      io.Writer
	json     bool
}

func newMigrator(cmd *cobra.Command, driver, dsn string, jsonOutput bool) (*migrator, func(), error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	specs := &config.EnvSpec{
		DBDriver:          driver,
		DSN:               dsn,
		SQLitePath:        dsn,
		DBMaxConns:        2,
		DBMinConns:        1,
		DBMaxConnLifetime: time.Hour,
		DBMaxConnIdleTime: time.Minute,
	}

	client, err := newDBClient(specs, tracer, monitor, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	var opts []goose.ProviderOption
	if jsonOutput {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := migrations.NewProvider(client.DB(), driver, opts...)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return &migrator{provider: provider, out: cmd.OutOrStdout(), json: jsonOutput}, client.Close, nil
}

func (m *migrator) run(ctx context.Context, command string, target int64) error {
	switch command {
	case "up":
		results, err := m.provider.Up(ctx)
		if err != nil {
			return err
		}
		return m.reportResults(results)
	case "down":
		if target < 0 {
			result, err := m.provider.Down(ctx)
			if err != nil {
				return err
			}
			return m.reportResults([]*goose.MigrationResult{result})
		}

		results, err := m.provider.DownTo(ctx, target)
		if err != nil {
			return err
		}
		return m.reportResults(results)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("invalid migration command: %q", command)
}

func (m *migrator) reportResults(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "No migrations to apply")
	}

	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}

	return w.Flush()
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]any{"status": state, "version": current}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(m.out, "Database version %d, migrations %s\n", current, state)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN or SQLite database path")
	migrateCmd.Flags().String("driver", db.DriverPostgres, "Database driver (postgres or sqlite)")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	_ = migrateCmd.MarkFlagRequired("dsn")

	migrateCmd.SilenceUsage = true

	rootCmd.AddCommand(migrateCmd)
}

