package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory SQLite store holding the item, price
// and task document tables. The store is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("open in-memory task store: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("close in-memory task store: %v", err)
		}
	})
	return db
}
