// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"supportcenter/internal/config"
	"supportcenter/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a migrated, empty sqlite database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, false)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
