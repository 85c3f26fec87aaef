// Package db contains things related to the relational store
package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyamazurenko/Dance-partner-app/config"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/util"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func New(c *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(c.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if c.App.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := Open(dialector, logger.Default.LogMode(logLevel))
	if err != nil {
		return nil, err
	}

	if c.Database.SeedStyles {
		if err := SeedStyles(db); err != nil {
			return nil, fmt.Errorf("failed to seed dance styles, %w", err)
		}
	}

	return db, nil
}

// Open connects using dialector and migrates the schema. Driver errors are
// translated so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, l logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         l,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		model.User{},
		model.DanceStyle{},
		model.Profile{},
		model.ProfileDanceStyle{},
		model.Migration{},
	)
	if err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return nil
}

func dialectorFor(c config.DatabaseConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case "postgres":
		return postgres.Open(c.DSN), nil
	case "sqlite":
		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if util.IsRunningInDocker() && isSQLiteFile(c.DSN) {
			if _, err := os.Stat(c.DSN); errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("SQLite database file %s not mounted, please use docker volumes to mount it", c.DSN)
			}
		}

		return sqlite.Open(SQLiteDSN(c.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off by default
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_foreign_keys=on"
}

func isSQLiteFile(dsn string) bool {
	return !strings.HasPrefix(dsn, "file:") && !strings.Contains(dsn, ":memory:")
}
