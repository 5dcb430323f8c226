// Package dbtest opens a migrated in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/db"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Connect(":memory:")
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.Migrate(gdb), "migrate")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
