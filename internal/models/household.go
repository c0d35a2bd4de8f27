package models

// Roommate represents a person living in the house.
type Roommate struct {
	// ID is the unique identifier for the roommate (UUID format).
	// It is stable across sessions.
	ID string `json:"id"`

	// Name is the display name of the roommate.
	Name string `json:"name"`
}

// Room represents a space in the house.
// The two flags are independent: a room may be in neither, either, or both subsystems.
type Room struct {
	// ID is the unique identifier for the room (UUID format).
	ID string `json:"id"`

	// Name is the display name of the room (e.g., "Kitchen", "Bathroom").
	Name string `json:"name"`

	// InChoreRotation marks the room as cleaned on the weekly rotation.
	InChoreRotation bool `json:"inChoreRotation"`

	// Reservable marks the room as bookable by the hour.
	Reservable bool `json:"reservable"`
}

// RoommateIDs returns the IDs of roommates in list order.
func RoommateIDs(roommates []Roommate) []string {
	ids := make([]string, len(roommates))
	for i, r := range roommates {
		ids[i] = r.ID
	}
	return ids
}

// RoomIDs returns the IDs of rooms in list order.
func RoomIDs(rooms []Room) []string {
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}
