// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/mmynk/househub/internal/storage/sqlite"
)

// NewTestStore opens a SQLite store in a per-test temp directory and closes
// it when the test ends.
func NewTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"), "test")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}
