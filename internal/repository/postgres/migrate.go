package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

// ApplyMigrations runs every embedded migration that is not yet recorded in
// schema_migrations, in file name order, each in its own transaction.
func (r *Repository) ApplyMigrations(ctx context.Context) error {
	if _, err := r.connection.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations: %v", err)
	}

	files, err := migrationFiles(migrations)
	if err != nil {
		return err
	}

	for _, file := range files {
		version := strings.TrimPrefix(file, "migrations/")

		var applied bool
		if err := r.connection.GetContext(ctx, &applied,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version); err != nil {
			return fmt.Errorf("failed to check migration %s: %v", version, err)
		}
		if applied {
			continue
		}

		contents, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", version, err)
		}

		err = r.WithTx(ctx, func(ctx context.Context) error {
			if _, err := r.Chk(ctx).ExecContext(ctx, string(contents)); err != nil {
				return fmt.Errorf("failed to execute migration %s: %v", version, err)
			}
			if _, err := r.Chk(ctx).ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
				return fmt.Errorf("failed to record migration %s: %v", version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	files, err := fs.Glob(fsys, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %v", err)
	}
	sort.Strings(files)

	return files, nil
}
