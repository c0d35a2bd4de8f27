package chores_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/househub/internal/chores"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
	"github.com/mmynk/househub/internal/testutil"
)

func setupChoreService(t *testing.T) (*chores.Service, *household.Registry, storage.Store) {
	t.Helper()
	store := testutil.NewTestStore(t)
	registry := household.NewRegistry(store)
	return chores.NewService(store, registry), registry, store
}

func createRoommates(t *testing.T, registry *household.Registry, names ...string) []models.Roommate {
	t.Helper()
	var roommates []models.Roommate
	for _, name := range names {
		rm, err := registry.AddRoommate(context.Background(), name)
		if err != nil {
			t.Fatalf("creating roommate %s: %v", name, err)
		}
		roommates = append(roommates, rm)
	}
	return roommates
}

func createChoreRooms(t *testing.T, registry *household.Registry, names ...string) []models.Room {
	t.Helper()
	var rooms []models.Room
	for _, name := range names {
		room, err := registry.AddRoom(context.Background(), name, true, false)
		if err != nil {
			t.Fatalf("creating room %s: %v", name, err)
		}
		rooms = append(rooms, room)
	}
	return rooms
}

func TestChoreService_FirstRunDefaults(t *testing.T) {
	service, _, _ := setupChoreService(t)
	ctx := context.Background()

	week, err := service.CurrentWeek(ctx)
	if err != nil {
		t.Fatalf("CurrentWeek: %v", err)
	}
	if week != 1 {
		t.Errorf("week = %d, want 1", week)
	}

	duties, err := service.Duties(ctx)
	if err != nil {
		t.Fatalf("Duties: %v", err)
	}
	if len(duties) != 2 ||
		duties[0].Type != models.DutyDishwasher || duties[0].CurrentRoommateIndex != 0 ||
		duties[1].Type != models.DutyTrash || duties[1].CurrentRoommateIndex != 1 {
		t.Errorf("unexpected default duties: %+v", duties)
	}
}

func TestChoreService_StartDateIsSticky(t *testing.T) {
	service, _, _ := setupChoreService(t)
	ctx := context.Background()

	first, err := service.StartDate(ctx)
	if err != nil {
		t.Fatalf("StartDate: %v", err)
	}
	if len(first) != len("2006-01-02") {
		t.Errorf("unexpected date format %q", first)
	}
	second, _ := service.StartDate(ctx)
	if first != second {
		t.Errorf("start date changed from %s to %s", first, second)
	}
}

func TestChoreService_LazyGeneration(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()

	roommates := createRoommates(t, registry, "Alice", "Bob")
	rooms := createChoreRooms(t, registry, "Kitchen", "Bathroom")
	if _, err := registry.AddRoom(ctx, "Studio", false, true); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}

	week, rows, err := service.WeekAssignments(ctx)
	if err != nil {
		t.Fatalf("WeekAssignments: %v", err)
	}
	if week != 1 || len(rows) != 2 {
		t.Fatalf("week %d rows %d, want week 1 with 2 rows", week, len(rows))
	}
	if rows[0].RoomID != rooms[0].ID || *rows[0].RoommateID != roommates[0].ID {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].RoomID != rooms[1].ID || *rows[1].RoommateID != roommates[1].ID {
		t.Errorf("row 1 = %+v", rows[1])
	}

	t.Run("roster changes do not regenerate the week", func(t *testing.T) {
		createRoommates(t, registry, "Charlie")
		createChoreRooms(t, registry, "Garage")

		_, again, err := service.WeekAssignments(ctx)
		if err != nil {
			t.Fatalf("WeekAssignments: %v", err)
		}
		if len(again) != 2 {
			t.Errorf("expected stale snapshot of 2 rows, got %d", len(again))
		}

		all, _ := service.Assignments(ctx)
		if len(all) != 2 {
			t.Errorf("history should hold 2 rows, got %d", len(all))
		}
	})
}

func TestChoreService_NoRoommatesGeneratesNothing(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()
	createChoreRooms(t, registry, "Kitchen")

	_, rows, err := service.WeekAssignments(ctx)
	if err != nil {
		t.Fatalf("WeekAssignments: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}

	createRoommates(t, registry, "Alice")
	_, rows, _ = service.WeekAssignments(ctx)
	if len(rows) != 1 {
		t.Errorf("week should generate once roommates exist, got %d rows", len(rows))
	}
}

func TestChoreService_CompleteAssignment(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()
	createRoommates(t, registry, "Alice", "Bob")
	rooms := createChoreRooms(t, registry, "Kitchen", "Bathroom")

	if _, _, err := service.WeekAssignments(ctx); err != nil {
		t.Fatalf("WeekAssignments: %v", err)
	}

	rows, err := service.CompleteAssignment(ctx, rooms[1].ID)
	if err != nil {
		t.Fatalf("CompleteAssignment: %v", err)
	}
	if rows[0].Completed || !rows[1].Completed {
		t.Errorf("unexpected completion state: %+v", rows)
	}
}

func TestChoreService_AdvanceWeek(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()
	roommates := createRoommates(t, registry, "Alice", "Bob", "Charlie")
	rooms := createChoreRooms(t, registry, "Kitchen")

	if _, _, err := service.WeekAssignments(ctx); err != nil {
		t.Fatalf("WeekAssignments: %v", err)
	}
	if _, err := service.CompleteAssignment(ctx, rooms[0].ID); err != nil {
		t.Fatalf("CompleteAssignment: %v", err)
	}
	if _, err := service.CompleteDuty(ctx, models.DutyDishwasher); err != nil {
		t.Fatalf("CompleteDuty: %v", err)
	}
	recurring, err := service.AddCustomChore(ctx, "Water plants", nil, true, 0)
	if err != nil {
		t.Fatalf("AddCustomChore: %v", err)
	}
	oneTime, err := service.AddCustomChore(ctx, "Fix shelf", &roommates[2].ID, false, -1)
	if err != nil {
		t.Fatalf("AddCustomChore: %v", err)
	}
	if _, err := service.CompleteCustomChore(ctx, oneTime.ID); err != nil {
		t.Fatalf("CompleteCustomChore: %v", err)
	}
	if _, err := service.CompleteCustomChore(ctx, recurring.ID); err != nil {
		t.Fatalf("CompleteCustomChore: %v", err)
	}

	week, fresh, err := service.AdvanceWeek(ctx)
	if err != nil {
		t.Fatalf("AdvanceWeek: %v", err)
	}
	if week != 2 {
		t.Errorf("week = %d, want 2", week)
	}
	if len(fresh) != 1 || fresh[0].Completed || *fresh[0].RoommateID != roommates[1].ID {
		t.Errorf("fresh batch = %+v, want pending row for Bob", fresh)
	}

	t.Run("history is kept", func(t *testing.T) {
		all, err := service.Assignments(ctx)
		if err != nil {
			t.Fatalf("Assignments: %v", err)
		}
		prior := chores.ForWeek(all, 1)
		if len(prior) != 1 || !prior[0].Completed || *prior[0].RoommateID != roommates[0].ID {
			t.Errorf("week 1 history = %+v", prior)
		}
		if len(chores.ForWeek(all, 2)) != 1 {
			t.Error("week 2 batch missing from history")
		}
	})

	t.Run("duties reset but cursors stay", func(t *testing.T) {
		duties, _ := service.Duties(ctx)
		for _, d := range duties {
			if d.Completed {
				t.Errorf("%s should be pending after advance", d.Type)
			}
		}
		if duties[0].CurrentRoommateIndex != 1 {
			t.Errorf("dishwasher cursor = %d, want 1 (moved only by completion)", duties[0].CurrentRoommateIndex)
		}
		if duties[1].CurrentRoommateIndex != 1 {
			t.Errorf("trash cursor = %d, want 1", duties[1].CurrentRoommateIndex)
		}
	})

	t.Run("custom chores untouched", func(t *testing.T) {
		custom, _ := service.CustomChores(ctx)
		for _, c := range custom {
			switch c.ID {
			case recurring.ID:
				if c.CurrentRoommateIndex != 1 {
					t.Errorf("recurring cursor = %d, want 1", c.CurrentRoommateIndex)
				}
			case oneTime.ID:
				if !c.Completed {
					t.Error("one-time completion should survive the week boundary")
				}
			}
		}
	})

	t.Run("advance never regenerates the current week lazily", func(t *testing.T) {
		w, rows, err := service.WeekAssignments(ctx)
		if err != nil {
			t.Fatalf("WeekAssignments: %v", err)
		}
		if w != 2 || len(rows) != 1 {
			t.Errorf("week %d rows %d, want week 2 with 1 row", w, len(rows))
		}
	})
}

func TestChoreService_EmptyHouseholdNoOps(t *testing.T) {
	service, _, _ := setupChoreService(t)
	ctx := context.Background()

	duties, err := service.CompleteDuty(ctx, models.DutyTrash)
	if err != nil {
		t.Fatalf("CompleteDuty should not fail in an empty household: %v", err)
	}
	if duties[1].CurrentRoommateIndex != 1 {
		t.Errorf("trash cursor moved to %d", duties[1].CurrentRoommateIndex)
	}

	chore, err := service.AddCustomChore(ctx, "Sweep porch", nil, true, 0)
	if err != nil {
		t.Fatalf("AddCustomChore: %v", err)
	}
	custom, err := service.CompleteCustomChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("CompleteCustomChore should not fail in an empty household: %v", err)
	}
	if custom[0].CurrentRoommateIndex != 0 || custom[0].Completed {
		t.Errorf("recurring chore changed: %+v", custom[0])
	}

	week, fresh, err := service.AdvanceWeek(ctx)
	if err != nil {
		t.Fatalf("AdvanceWeek: %v", err)
	}
	if week != 2 || len(fresh) != 0 {
		t.Errorf("week %d fresh %d, want week 2 with nothing generated", week, len(fresh))
	}
}

func TestChoreService_CustomChores(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()
	roommates := createRoommates(t, registry, "Alice")

	t.Run("recurring ignores the requested assignee", func(t *testing.T) {
		c, err := service.AddCustomChore(ctx, "Water plants", &roommates[0].ID, true, 0)
		if err != nil {
			t.Fatalf("AddCustomChore: %v", err)
		}
		if c.AssignedTo != nil {
			t.Error("recurring chore should have no fixed assignee")
		}
	})

	t.Run("blank assignee goes to the pool", func(t *testing.T) {
		empty := ""
		c, err := service.AddCustomChore(ctx, "Defrost freezer", &empty, false, -1)
		if err != nil {
			t.Fatalf("AddCustomChore: %v", err)
		}
		if c.AssignedTo != nil {
			t.Errorf("assignee = %q, want nil", *c.AssignedTo)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := service.AddCustomChore(ctx, " ", nil, false, -1)
		if !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("complete unknown chore", func(t *testing.T) {
		_, err := service.CompleteCustomChore(ctx, "ghost")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		all, _ := service.CustomChores(ctx)
		remaining, err := service.DeleteCustomChore(ctx, all[0].ID)
		if err != nil {
			t.Fatalf("DeleteCustomChore: %v", err)
		}
		if len(remaining) != len(all)-1 {
			t.Errorf("expected %d chores, got %d", len(all)-1, len(remaining))
		}
	})
}

func TestChoreService_DeletedRoommateLeavesDanglingRows(t *testing.T) {
	service, registry, _ := setupChoreService(t)
	ctx := context.Background()
	roommates := createRoommates(t, registry, "Alice", "Bob")
	createChoreRooms(t, registry, "Kitchen", "Bathroom")

	if _, _, err := service.WeekAssignments(ctx); err != nil {
		t.Fatalf("WeekAssignments: %v", err)
	}
	if _, err := registry.DeleteRoommate(ctx, roommates[1].ID); err != nil {
		t.Fatalf("DeleteRoommate: %v", err)
	}

	_, rows, _ := service.WeekAssignments(ctx)
	if *rows[1].RoommateID != roommates[1].ID {
		t.Error("rows referencing a deleted roommate should be left as they were")
	}

	board, err := service.Board(ctx)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if got := board.Directory.RoommateName(*rows[1].RoommateID); got != models.UnknownName {
		t.Errorf("deleted roommate resolves to %q, want %q", got, models.UnknownName)
	}
	if len(board.People) != 1 {
		t.Errorf("board should only list current roommates, got %d", len(board.People))
	}
}

func TestChoreService_MalformedStateFallsBack(t *testing.T) {
	service, _, store := setupChoreService(t)
	ctx := context.Background()

	if err := store.Set(ctx, storage.KeyChoresWeek, []byte(`"seven"`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, storage.KeyDishwasherTrash, []byte(`{broken`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	week, err := service.CurrentWeek(ctx)
	if err != nil || week != 1 {
		t.Errorf("CurrentWeek = %d, %v; want 1, nil", week, err)
	}
	duties, err := service.Duties(ctx)
	if err != nil || len(duties) != 2 {
		t.Errorf("Duties = %+v, %v; want defaults", duties, err)
	}
}
