package household

import (
	"context"

	"github.com/mmynk/househub/internal/models"
)

// Directory resolves roommate and room IDs to display names.
// IDs are weak references: anything that no longer resolves reads as
// models.UnknownName.
type Directory struct {
	roommates map[string]string
	rooms     map[string]string
}

// NewDirectory indexes the given roommates and rooms.
func NewDirectory(roommates []models.Roommate, rooms []models.Room) *Directory {
	d := &Directory{
		roommates: make(map[string]string, len(roommates)),
		rooms:     make(map[string]string, len(rooms)),
	}
	for _, rm := range roommates {
		d.roommates[rm.ID] = rm.Name
	}
	for _, room := range rooms {
		d.rooms[room.ID] = room.Name
	}
	return d
}

// Directory snapshots the registry into a Directory.
func (r *Registry) Directory(ctx context.Context) (*Directory, error) {
	roommates, err := r.Roommates(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := r.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	return NewDirectory(roommates, rooms), nil
}

// RoommateName returns the roommate's name or models.UnknownName.
func (d *Directory) RoommateName(id string) string {
	if name, ok := d.roommates[id]; ok {
		return name
	}
	return models.UnknownName
}

// RoomName returns the room's name or models.UnknownName.
func (d *Directory) RoomName(id string) string {
	if name, ok := d.rooms[id]; ok {
		return name
	}
	return models.UnknownName
}

// HasRoom reports whether the room still exists.
func (d *Directory) HasRoom(id string) bool {
	_, ok := d.rooms[id]
	return ok
}
