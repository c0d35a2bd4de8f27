// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Keys under which each collection is persisted. Every key holds one
// independent JSON value that is always replaced as a whole.
const (
	KeyRoommates        = "roommates"
	KeyRooms            = "rooms"
	KeyChoresWeek       = "chores_week"
	KeyChoreAssignments = "chores_assignments"
	KeyDishwasherTrash  = "chores_dt"
	KeyCustomChores     = "chores_custom"
	KeyChoresStartDate  = "chores_start_date"
	KeyEvents           = "events"
	KeyPayments         = "payments"
	KeyReservations     = "reservations"
	KeyAvailability     = "availability"
)

// Store defines a namespaced key-value store holding JSON documents.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the domain services.
type Store interface {
	// Get returns the raw value stored under key.
	// The boolean is false if the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key in the store's namespace.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// Load decodes the value under key into a T.
// An absent key yields fallback. A value that does not decode is treated as
// corrupted first-run state: it is logged and fallback is returned.
// Only I/O failures are reported as errors.
func Load[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("Discarding malformed persisted value", "key", key, "error", err)
		return fallback, nil
	}
	return value, nil
}

// Save encodes value and replaces whatever was stored under key.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
