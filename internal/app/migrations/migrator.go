package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/student-api/internal/db"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// Files holds the schema shipped with the binary.
//
//go:embed *.sql
var Files embed.FS

// Database is what the migrator needs from the pool.
type Database interface {
	db.Querier
	db.TxBeginner
}

// Migrator manages database migrations
type Migrator struct {
	db Database
}

// NewMigrator creates a new migrator
func NewMigrator(database Database) *Migrator {
	return &Migrator{
		db: database,
	}
}

type migrationFile struct {
	version string
	name    string
}

// versionOf extracts the version from a filename ("001_init.sql" => "001").
func versionOf(filename string) string {
	return strings.SplitN(path.Base(filename), "_", 2)[0]
}

// collectMigrations lists the *.sql files at the root of fsys in lexical order.
func collectMigrations(fsys fs.FS) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var files []migrationFile
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version := versionOf(entry.Name())
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, other, entry.Name())
		}
		seen[version] = entry.Name()
		files = append(files, migrationFile{version: version, name: entry.Name()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	return files, nil
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// applyMigration runs one file and records its version in the same transaction.
func (m *Migrator) applyMigration(ctx context.Context, fsys fs.FS, file migrationFile) error {
	content, err := fs.ReadFile(fsys, file.name)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", file.name, err)
	}

	return db.RunInTx(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error executing migration %s: %w", file.name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, file.version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", file.name, err)
		}
		return nil
	})
}

// MigrateFromFS applies every pending *.sql file found at the root of fsys.
func (m *Migrator) MigrateFromFS(ctx context.Context, fsys fs.FS) error {
	files, err := collectMigrations(fsys)
	if err != nil {
		return err
	}

	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, file := range files {
		applied, err := m.isMigrationApplied(ctx, file.version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("migration", file.name).Msg("Migration already applied, skipping")
			continue
		}

		if err := m.applyMigration(ctx, fsys, file); err != nil {
			return err
		}
		logger.Info().Str("migration", file.name).Msg("Migration applied")
	}

	return nil
}

// Migrate applies the embedded schema.
func (m *Migrator) Migrate(ctx context.Context) error {
	return m.MigrateFromFS(ctx, Files)
}
