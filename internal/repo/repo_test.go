package repo

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// newTestDB поднимает SQLite (modernc.org/sqlite) во временном файле для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
