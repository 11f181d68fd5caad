// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/pkg/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated SQLite store in a temp dir, closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Options{
		Driver:   database.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "inventory.db"),
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
