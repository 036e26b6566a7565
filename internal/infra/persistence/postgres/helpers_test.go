package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens a migrated in-memory SQLite database on a single connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(context.Background(), ":memory:", newDiscardLogger(), false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
