// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"io/fs"
	"testing"
)

func TestSource(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			fsys, _, err := Source(driver)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			files, err := fs.Glob(fsys, "*.sql")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(files) != 2 {
				t.Errorf("expected 2 migrations, got %d", len(files))
			}
		})
	}

	if _, _, err := Source("mysql"); err == nil {
		t.Errorf("expected an error for an unsupported driver")
	}
}
