package sqlconfig

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending migration against dsn and reports the
// schema version before and after.
func RunMigrations(dsn string) (uint, uint, error) {
	// Separate connection so closing the migrator leaves the caller's pool intact.
	migrateDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return 0, 0, fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		return 0, 0, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, 0, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, 0, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	preMigrationVersion, err := version(m)
	if err != nil {
		return 0, 0, fmt.Errorf("read pre-migration version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preMigrationVersion, 0, fmt.Errorf("run migrations: %w", err)
	}

	postMigrationVersion, err := version(m)
	if err != nil {
		return preMigrationVersion, 0, fmt.Errorf("read post-migration version: %w", err)
	}

	return preMigrationVersion, postMigrationVersion, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, nil
}
