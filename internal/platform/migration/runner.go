// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the schema up to date with golang-migrate before
// the API accepts traffic.
package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Source opens the numbered *.sql files at the root of migrations.
func Source(migrations fs.FS) (source.Driver, error) {
	driver, err := iofs.New(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("migration: open source: %w", err)
	}
	return driver, nil
}

/*
RunUp applies every pending UP migration.

A dirty database aborts startup; it needs a manual "migrate force".
ErrNoChange is not an error.
*/
func RunUp(dsn string, migrations fs.FS, logger *slog.Logger) error {
	driver, err := Source(migrations)
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", driver, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: connect: %w", err)
	}
	migrator.Log = slogAdapter{logger: logger}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.String("error", closeErr.Error()))
		}
	}()

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return fmt.Errorf("migration: schema is dirty at version %d", from)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: up from version %d: %w", from, err)
	}

	to, _, _ := migrator.Version()
	logger.Info("migration_complete",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)
	return nil
}

// toPgx5DSN maps postgres:// and postgresql:// URLs onto the pgx5 driver.
func toPgx5DSN(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogAdapter satisfies migrate.Logger.
type slogAdapter struct {
	logger *slog.Logger
}

func (adapter slogAdapter) Printf(format string, args ...any) {
	adapter.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (adapter slogAdapter) Verbose() bool { return false }
