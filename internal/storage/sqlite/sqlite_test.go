package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "househub-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath, "")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("New defaults the namespace", func(t *testing.T) {
		if store.Namespace() != DefaultNamespace {
			t.Errorf("Namespace = %q, want %q", store.Namespace(), DefaultNamespace)
		}
	})

	t.Run("Get on absent key reports not found", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Errorf("Expected ok=false, got value %q", value)
		}
	})

	t.Run("Set then Get round trips", func(t *testing.T) {
		if err := store.Set(ctx, "roommates", []byte(`[{"id":"a","name":"Alice"}]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, ok, err := store.Get(ctx, "roommates")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected key to be present")
		}
		if string(value) != `[{"id":"a","name":"Alice"}]` {
			t.Errorf("Get = %s", value)
		}
	})

	t.Run("Set replaces the whole value", func(t *testing.T) {
		if err := store.Set(ctx, "chores_week", []byte("1")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Set(ctx, "chores_week", []byte("2")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, _, err := store.Get(ctx, "chores_week")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(value) != "2" {
			t.Errorf("Get = %s, want 2", value)
		}
	})

	t.Run("Delete removes the key", func(t *testing.T) {
		if err := store.Set(ctx, "events", []byte("[]")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Delete(ctx, "events"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok, _ := store.Get(ctx, "events"); ok {
			t.Error("Expected key to be gone after Delete")
		}
		if err := store.Delete(ctx, "events"); err != nil {
			t.Errorf("Deleting an absent key should not fail: %v", err)
		}
	})

	t.Run("Keys lists sorted keys", func(t *testing.T) {
		keys, err := store.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		want := []string{"chores_week", "roommates"}
		if len(keys) != len(want) {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("Keys[%d] = %s, want %s", i, keys[i], want[i])
			}
		}
	})
}

func TestSQLiteStore_NamespacesAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")

	first, err := New(dbPath, "house-a")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer first.Close()

	second, err := New(dbPath, "house-b")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer second.Close()

	ctx := context.Background()
	if err := first.Set(ctx, "chores_week", []byte("7")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok, err := second.Get(ctx, "chores_week"); err != nil || ok {
		t.Errorf("Expected house-b not to see house-a's key (ok=%v, err=%v)", ok, err)
	}
}
