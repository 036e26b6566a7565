package postgres

import (
	"context"
	"log/slog"

	"shopbot/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens and migrates a SQLite database for local runs and tests.
// SQLite serializes writers, so the pool holds a single connection; ":memory:" is private to it.
// Catalog matching falls back to substring search on this store.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 NewGormLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %q", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return db, nil
}
