package chores

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/rotation"
)

// ForWeek returns the rows belonging to week, preserving order.
func ForWeek(assignments []models.ChoreAssignment, week int) []models.ChoreAssignment {
	out := []models.ChoreAssignment{}
	for _, a := range assignments {
		if a.Week == week {
			out = append(out, a)
		}
	}
	return out
}

// MarkAssignmentComplete returns a copy of assignments with the (roomID, week)
// row completed. Completion is one-way; an unmatched pair changes nothing.
func MarkAssignmentComplete(assignments []models.ChoreAssignment, roomID string, week int) []models.ChoreAssignment {
	updated := make([]models.ChoreAssignment, len(assignments))
	copy(updated, assignments)
	for i := range updated {
		if updated[i].RoomID == roomID && updated[i].Week == week {
			updated[i].Completed = true
		}
	}
	return updated
}

// DefaultDuties is the first-run duty state: the dishwasher starts with the
// first roommate and the trash with the second, both pending.
func DefaultDuties() []models.DishwasherTrash {
	return []models.DishwasherTrash{
		{Type: models.DutyDishwasher, CurrentRoommateIndex: 0, Completed: false},
		{Type: models.DutyTrash, CurrentRoommateIndex: 1, Completed: false},
	}
}

// CompleteDuty resolves the current turn of dutyType and hands the duty to
// the next roommate. The duty comes back pending, so callers never observe a
// completed-but-unassigned state.
func CompleteDuty(duties []models.DishwasherTrash, dutyType models.DutyType, totalRoommates int) ([]models.DishwasherTrash, error) {
	if !dutyType.Valid() {
		return duties, fmt.Errorf("%w: unknown duty type %q", models.ErrInvalidInput, dutyType)
	}

	updated := make([]models.DishwasherTrash, len(duties))
	copy(updated, duties)
	for i := range updated {
		if updated[i].Type != dutyType {
			continue
		}
		next, err := rotation.Advance(updated[i].CurrentRoommateIndex, totalRoommates)
		if err != nil {
			return duties, err
		}
		updated[i].CurrentRoommateIndex = next
		updated[i].Completed = false
	}
	return updated, nil
}

// ResetDuties clears every duty's completed flag and leaves the cursors alone.
func ResetDuties(duties []models.DishwasherTrash) []models.DishwasherTrash {
	updated := make([]models.DishwasherTrash, len(duties))
	for i, d := range duties {
		d.Completed = false
		updated[i] = d
	}
	return updated
}

// NewCustomChore builds a pending chore with a fresh ID.
// Recurring chores never carry a fixed assignee. By convention callers pass
// startingIndex 0 for recurring chores and -1 for one-time chores.
func NewCustomChore(name string, assignedTo *string, recurring bool, startingIndex int) models.CustomChore {
	if recurring {
		assignedTo = nil
	}
	return models.CustomChore{
		ID:                   uuid.New().String(),
		Name:                 name,
		Recurring:            recurring,
		AssignedTo:           assignedTo,
		CurrentRoommateIndex: startingIndex,
		Completed:            false,
	}
}

// CompleteCustomChore applies a completion to the chore with the given ID.
// Recurring chores advance their cursor and stay pending; one-time chores
// toggle, so a second call undoes the first.
func CompleteCustomChore(chores []models.CustomChore, id string, totalRoommates int) ([]models.CustomChore, error) {
	updated := make([]models.CustomChore, len(chores))
	copy(updated, chores)

	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if !updated[i].Recurring {
			updated[i].Completed = !updated[i].Completed
			return updated, nil
		}
		next, err := rotation.Advance(updated[i].CurrentRoommateIndex, totalRoommates)
		if err != nil {
			return chores, err
		}
		updated[i].CurrentRoommateIndex = next
		updated[i].Completed = false
		return updated, nil
	}

	return chores, fmt.Errorf("%w: custom chore %s", models.ErrNotFound, id)
}

// MigrateCustomChores normalizes chores read from storage. Records predating
// the recurring fields already decode as one-time chores with cursor 0; a
// recurring chore that somehow carries an assignee has it dropped.
func MigrateCustomChores(chores []models.CustomChore) []models.CustomChore {
	migrated := make([]models.CustomChore, len(chores))
	for i, c := range chores {
		if c.Recurring {
			c.AssignedTo = nil
		}
		migrated[i] = c
	}
	return migrated
}
