package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrateUp applies every pending "up" migration found at source (e.g. "file://migrations").
// It reports whether anything was applied.
func MigrateUp(databaseURL, source string, logger *slog.Logger) (bool, error) {
	return runMigrations(databaseURL, source, logger, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// MigrateDown rolls back steps migrations. steps <= 0 rolls back everything.
func MigrateDown(databaseURL, source string, steps int, logger *slog.Logger) (bool, error) {
	return runMigrations(databaseURL, source, logger, func(m *migrate.Migrate) error {
		if steps <= 0 {
			return m.Down()
		}
		return m.Steps(-steps)
	})
}

func runMigrations(databaseURL, source string, logger *slog.Logger, apply func(*migrate.Migrate) error) (applied bool, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Migrations get their own database/sql handle through the pgx stdlib driver
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return false, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	runErr := apply(m)
	if runErr != nil && !errors.Is(runErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("failed to apply migrations: %w", runErr)
	}

	// The source and database errors from Close surface a dirty migration state
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return false, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(runErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return false, nil
	}
	logger.Info("Database migrations applied successfully", slog.String("source", source))
	return true, nil
}
