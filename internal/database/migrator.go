package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"family-ledger/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// MigrationRunner applies the embedded SQL migrations to a postgres database.
type MigrationRunner struct {
	db            *sql.DB
	maxRetries    int
	retryInterval time.Duration
}

func NewMigrationRunner(db *sql.DB, cfg config.MigrationConfig) *MigrationRunner {
	return &MigrationRunner{
		db:            db,
		maxRetries:    max(cfg.MaxRetries, 1),
		retryInterval: cfg.RetryInterval,
	}
}

// WaitForDatabase pings until the database answers, the attempts run out or
// ctx is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.maxRetries; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		slog.Warn("Database not ready", "attempt", attempt, "max_attempts", mr.maxRetries, "error", lastErr)

		if attempt == mr.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retryInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.maxRetries, lastErr)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}

// Up applies pending migrations and returns the resulting schema version. A
// dirty schema is forced back to its recorded version first.
func (mr *MigrationRunner) Up() (uint, error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		slog.Warn("Schema is dirty, forcing recorded version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return 0, fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		return version, nil
	case err != nil:
		return 0, fmt.Errorf("migration failed: %w", err)
	}

	version, _, err = m.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// RunMigrationsIfEnabled runs the embedded migrations when RUN_MIGRATIONS is
// set. It reports whether the schema is now managed by migrations.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg config.MigrationConfig) (bool, error) {
	if !cfg.Enabled {
		slog.Info("SQL migrations disabled, schema is managed by AutoMigrate")
		return false, nil
	}

	runner := NewMigrationRunner(db, cfg)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	version, err := runner.Up()
	if err != nil {
		return false, fmt.Errorf("migration execution failed: %w", err)
	}
	slog.Info("Schema migrated", "version", version)

	return true, nil
}
