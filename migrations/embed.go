// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var EmbedMigrations embed.FS

// Source returns the migration set and goose dialect for a database driver.
func Source(driver string) (fs.FS, goose.Dialect, error) {
	var dir string
	var dialect goose.Dialect

	switch driver {
	case "postgres", "pgx":
		dir, dialect = "postgres", goose.DialectPostgres
	case "sqlite", "sqlite3":
		dir, dialect = "sqlite", goose.DialectSQLite3
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}

	fsys, err := fs.Sub(EmbedMigrations, dir)
	if err != nil {
		return nil, "", err
	}

	return fsys, dialect, nil
}

// NewProvider builds a goose provider over the embedded migrations.
func NewProvider(db *sql.DB, driver string, opts ...goose.ProviderOption) (*goose.Provider, error) {
	fsys, dialect, err := Source(driver)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, db, fsys, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := NewProvider(db, driver, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
