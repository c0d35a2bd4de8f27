package chores

import (
	"context"
	"fmt"

	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/rotation"
)

// PersonChores is everything one roommate is on the hook for this week.
type PersonChores struct {
	Roommate  models.Roommate
	Rotation  []models.ChoreAssignment
	Recurring []models.CustomChore
	OneTime   []models.CustomChore
	Duties    []models.DishwasherTrash
}

// Board is the current week's chore overview.
type Board struct {
	Week   int
	People []PersonChores

	// Unassigned is the pool of one-time chores nobody has picked up.
	Unassigned []models.CustomChore

	// Done and Total count this week's rotation rows plus one-time chores.
	// Recurring chores and duties are always pending and are not counted.
	Done  int
	Total int

	Directory *household.Directory
}

// Board assembles the per-roommate view of the current week, generating the
// week's rotation first if it has not been observed yet.
func (s *Service) Board(ctx context.Context) (*Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week, assignments, err := s.weekAssignments(ctx)
	if err != nil {
		return nil, err
	}
	duties, err := s.Duties(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.CustomChores(ctx)
	if err != nil {
		return nil, err
	}
	roommates, err := s.roster.Roommates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roommates: %w", err)
	}
	rooms, err := s.roster.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	return buildBoard(week, assignments, duties, custom, roommates, rooms), nil
}

func buildBoard(
	week int,
	assignments []models.ChoreAssignment,
	duties []models.DishwasherTrash,
	custom []models.CustomChore,
	roommates []models.Roommate,
	rooms []models.Room,
) *Board {
	dir := household.NewDirectory(roommates, rooms)
	ids := models.RoommateIDs(roommates)

	board := &Board{
		Week:       week,
		People:     make([]PersonChores, 0, len(roommates)),
		Unassigned: []models.CustomChore{},
		Directory:  dir,
	}

	for _, rm := range roommates {
		person := PersonChores{Roommate: rm}

		for _, a := range assignments {
			if a.RoommateID != nil && *a.RoommateID == rm.ID && dir.HasRoom(a.RoomID) {
				person.Rotation = append(person.Rotation, a)
			}
		}
		for _, c := range custom {
			if c.Recurring {
				if holder, ok := rotation.Assignee(c.CurrentRoommateIndex, ids); ok && holder == rm.ID {
					person.Recurring = append(person.Recurring, c)
				}
			} else if c.AssignedTo != nil && *c.AssignedTo == rm.ID {
				person.OneTime = append(person.OneTime, c)
			}
		}
		for _, d := range duties {
			if holder, ok := rotation.Assignee(d.CurrentRoommateIndex, ids); ok && holder == rm.ID {
				person.Duties = append(person.Duties, d)
			}
		}

		board.People = append(board.People, person)
	}

	for _, a := range assignments {
		board.Total++
		if a.Completed {
			board.Done++
		}
	}
	for _, c := range custom {
		if c.Recurring {
			continue
		}
		board.Total++
		if c.Completed {
			board.Done++
		}
		if c.AssignedTo == nil {
			board.Unassigned = append(board.Unassigned, c)
		}
	}

	return board
}
