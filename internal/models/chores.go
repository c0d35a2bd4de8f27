package models

// ChoreAssignment is one room's cleaning duty for one week.
// Rows are keyed by (RoomID, Week); a new week gets fresh rows instead of
// mutating old ones.
type ChoreAssignment struct {
	// RoomID references the room to clean.
	RoomID string `json:"roomId"`

	// RoommateID references the roommate responsible for the room.
	// Nil only when the rotation was built with no roommates.
	RoommateID *string `json:"roommateId"`

	// Completed is set once the room has been cleaned this week.
	Completed bool `json:"completed"`

	// Week is the week number this row belongs to (starting at 1).
	Week int `json:"week"`
}

// DutyType identifies one of the singleton rotating duties.
type DutyType string

const (
	DutyDishwasher DutyType = "dishwasher"
	DutyTrash      DutyType = "trash"
)

// Valid reports whether d is a known duty type.
func (d DutyType) Valid() bool {
	return d == DutyDishwasher || d == DutyTrash
}

// DishwasherTrash is a singleton duty with its own rotation cursor.
// It is not week-scoped: the cursor rolls across all weeks.
type DishwasherTrash struct {
	Type DutyType `json:"type"`

	// CurrentRoommateIndex is the rotation cursor into the ordered roommate list.
	CurrentRoommateIndex int `json:"currentRoommateIndex"`

	Completed bool `json:"completed"`
}

// CustomChore is a user-defined chore.
//
// Recurring chores rotate: AssignedTo is always nil and the live assignee is
// derived from CurrentRoommateIndex. One-time chores have a fixed AssignedTo
// (or nil for the unassigned pool) and ignore the cursor.
//
// Records written before Recurring and CurrentRoommateIndex existed decode
// with their zero values (false, 0), which is the intended migration.
type CustomChore struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Recurring            bool    `json:"recurring"`
	AssignedTo           *string `json:"assignedTo"`
	CurrentRoommateIndex int     `json:"currentRoommateIndex"`
	Completed            bool    `json:"completed"`
}
