// Package rotation computes fair round-robin chore assignments.
//
// Everything here is a pure function of its arguments: the week counter and
// roommate list are passed in by the caller, never read from storage.
package rotation

import (
	"fmt"

	"github.com/mmynk/househub/internal/models"
)

// ErrNoRoommates is returned when a cursor cannot advance because the
// household is empty.
var ErrNoRoommates = fmt.Errorf("%w: no roommates to rotate through", models.ErrInvalidState)

// Build assigns each chore room to a roommate for the given week.
//
// The room at position i goes to roommate (i + week - 1) mod n, so every
// room's assignee moves one roommate forward each week and, for a fixed room,
// weeks 1..n visit every roommate exactly once. With no roommates the result
// is empty: rooms go unassigned that week.
func Build(roommateIDs, roomIDs []string, week int) []models.ChoreAssignment {
	n := len(roommateIDs)
	if n == 0 {
		return []models.ChoreAssignment{}
	}

	assignments := make([]models.ChoreAssignment, len(roomIDs))
	for i, roomID := range roomIDs {
		roommateID := roommateIDs[mod(i+week-1, n)]
		assignments[i] = models.ChoreAssignment{
			RoomID:     roomID,
			RoommateID: &roommateID,
			Completed:  false,
			Week:       week,
		}
	}
	return assignments
}

// Assignee derives the roommate currently holding a cursor-based duty.
// It reports false when there are no roommates.
func Assignee(cursor int, roommateIDs []string) (string, bool) {
	if len(roommateIDs) == 0 {
		return "", false
	}
	return roommateIDs[mod(cursor, len(roommateIDs))], true
}

// Advance moves a cursor to the next roommate, wrapping at total.
func Advance(cursor, total int) (int, error) {
	if total <= 0 {
		return cursor, ErrNoRoommates
	}
	return mod(cursor+1, total), nil
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
