package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration for driver from dir/postgresql
// or dir/mysql. No pending migrations is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString, dir string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	migrationsPath := "file://" + path.Join(dir, "postgresql")
	if driver == "mysql" {
		migrationsPath = "file://" + path.Join(dir, "mysql")
	}

	m, err := migrate.New(migrationsPath, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
