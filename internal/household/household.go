// Package household manages the roommate and room registries.
package household

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
)

// Registry owns roommate and room identity.
// Every mutation is a whole-collection read-modify-write; the mutex keeps
// two mutations from interleaving inside one process.
type Registry struct {
	store storage.Store
	mu    sync.Mutex
}

// NewRegistry creates a Registry backed by store.
func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// Roommates returns all roommates in insertion order. Rotation order follows
// this list.
func (r *Registry) Roommates(ctx context.Context) ([]models.Roommate, error) {
	return storage.Load(ctx, r.store, storage.KeyRoommates, []models.Roommate{})
}

// AddRoommate appends a roommate with a fresh ID.
func (r *Registry) AddRoommate(ctx context.Context, name string) (models.Roommate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Roommate{}, fmt.Errorf("%w: roommate name required", models.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	roommates, err := r.Roommates(ctx)
	if err != nil {
		return models.Roommate{}, err
	}

	roommate := models.Roommate{ID: uuid.New().String(), Name: name}
	roommates = append(roommates, roommate)
	if err := storage.Save(ctx, r.store, storage.KeyRoommates, roommates); err != nil {
		return models.Roommate{}, err
	}

	slog.Info("Roommate added", "roommate_id", roommate.ID, "name", roommate.Name)
	return roommate, nil
}

// DeleteRoommate removes a roommate. Records that still reference the ID are
// left alone and resolve to models.UnknownName at display time.
func (r *Registry) DeleteRoommate(ctx context.Context, id string) ([]models.Roommate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roommates, err := r.Roommates(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Roommate, 0, len(roommates))
	for _, rm := range roommates {
		if rm.ID != id {
			updated = append(updated, rm)
		}
	}
	if err := storage.Save(ctx, r.store, storage.KeyRoommates, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Rooms returns all rooms in insertion order.
func (r *Registry) Rooms(ctx context.Context) ([]models.Room, error) {
	return storage.Load(ctx, r.store, storage.KeyRooms, []models.Room{})
}

// AddRoom appends a room with a fresh ID.
func (r *Registry) AddRoom(ctx context.Context, name string, inChoreRotation, reservable bool) (models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Room{}, fmt.Errorf("%w: room name required", models.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.Rooms(ctx)
	if err != nil {
		return models.Room{}, err
	}

	room := models.Room{
		ID:              uuid.New().String(),
		Name:            name,
		InChoreRotation: inChoreRotation,
		Reservable:      reservable,
	}
	rooms = append(rooms, room)
	if err := storage.Save(ctx, r.store, storage.KeyRooms, rooms); err != nil {
		return models.Room{}, err
	}

	slog.Info("Room added", "room_id", room.ID, "name", room.Name,
		"in_chore_rotation", inChoreRotation, "reservable", reservable)
	return room, nil
}

// UpdateRoom replaces the room with the same ID. Changing InChoreRotation
// does not regenerate assignments for a week that already has them.
func (r *Registry) UpdateRoom(ctx context.Context, room models.Room) ([]models.Room, error) {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return nil, fmt.Errorf("%w: room name required", models.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range rooms {
		if rooms[i].ID == room.ID {
			rooms[i] = room
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: room %s", models.ErrNotFound, room.ID)
	}

	if err := storage.Save(ctx, r.store, storage.KeyRooms, rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// DeleteRoom removes a room without touching records that reference it.
func (r *Registry) DeleteRoom(ctx context.Context, id string) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.ID != id {
			updated = append(updated, room)
		}
	}
	if err := storage.Save(ctx, r.store, storage.KeyRooms, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ChoreRooms returns the rooms in the chore rotation, in list order.
func ChoreRooms(rooms []models.Room) []models.Room {
	var out []models.Room
	for _, room := range rooms {
		if room.InChoreRotation {
			out = append(out, room)
		}
	}
	return out
}

// ReservableRooms returns the rooms that can be booked, in list order.
func ReservableRooms(rooms []models.Room) []models.Room {
	var out []models.Room
	for _, room := range rooms {
		if room.Reservable {
			out = append(out, room)
		}
	}
	return out
}
