// Package testdb opens a file-backed sqlite store with the production schema
// for package-level tests. The sqlite GORM driver drops locking clauses, so
// locked reads degrade to plain reads under the single-writer test store.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edulab/booklib-backend/internal/db"
	"github.com/edulab/booklib-backend/internal/types"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "booklib_test.db") + "?_busy_timeout=5000"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&types.Person{},
		&types.Book{},
		&types.IDSequence{},
	))
	require.NoError(t, db.SeedSequence(gormDB))
	return gormDB
}
