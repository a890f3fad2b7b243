package database

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the migrations found in dir. Having nothing to apply is
// not an error.
func Migrate(cfg Config, dir string, direction Direction) error {
	if direction != Up && direction != Down {
		return errors.Errorf("invalid migration direction %q", direction)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "resolve migration path")
	}
	sourceURL := fmt.Sprintf("file://%s", absDir)

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, cfg.Name, driver)
	if err != nil {
		return errors.Wrap(err, "create migration instance")
	}

	if direction == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		return errors.Wrapf(err, "migrate %s", direction)
	}
	return nil
}
