package testutils

import (
	"fmt"
	"testing"

	"ntreal/notes/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory sqlite database with migrations
// applied. Each call gets its own database so tests stay independent.
func SetupTestDB(t *testing.T) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	d := &database.Database{DB: db}
	t.Cleanup(d.Close)
	return d
}
