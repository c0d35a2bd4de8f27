package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

func addRoommates(t *testing.T, c *testClients, names ...string) []api.Roommate {
	t.Helper()
	out := make([]api.Roommate, 0, len(names))
	for _, name := range names {
		resp, err := c.household.AddRoommate(context.Background(), connect.NewRequest(&api.AddRoommateRequest{Name: name}))
		if err != nil {
			t.Fatalf("AddRoommate(%s) failed: %v", name, err)
		}
		out = append(out, resp.Msg.Roommate)
	}
	return out
}

func addRoom(t *testing.T, c *testClients, name string, inRotation, reservable bool) api.Room {
	t.Helper()
	resp, err := c.household.AddRoom(context.Background(), connect.NewRequest(&api.AddRoomRequest{
		Name:            name,
		InChoreRotation: inRotation,
		Reservable:      reservable,
	}))
	if err != nil {
		t.Fatalf("AddRoom(%s) failed: %v", name, err)
	}
	return resp.Msg.Room
}

func TestRoommates(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	roommates := addRoommates(t, c, "Alice", "Bob", "Charlie")
	if roommates[0].ID == "" {
		t.Error("expected roommate ID")
	}

	list, err := c.household.ListRoommates(ctx, connect.NewRequest(&api.ListRoommatesRequest{}))
	if err != nil {
		t.Fatalf("ListRoommates failed: %v", err)
	}
	if len(list.Msg.Roommates) != 3 || list.Msg.Roommates[2].Name != "Charlie" {
		t.Errorf("unexpected roommates %+v", list.Msg.Roommates)
	}

	del, err := c.household.DeleteRoommate(ctx, connect.NewRequest(&api.DeleteRoommateRequest{ID: roommates[1].ID}))
	if err != nil {
		t.Fatalf("DeleteRoommate failed: %v", err)
	}
	if len(del.Msg.Roommates) != 2 || del.Msg.Roommates[1].Name != "Charlie" {
		t.Errorf("unexpected roommates after delete %+v", del.Msg.Roommates)
	}

	_, err = c.household.AddRoommate(ctx, connect.NewRequest(&api.AddRoommateRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestRooms(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	kitchen := addRoom(t, c, "Kitchen", true, false)
	addRoom(t, c, "Living Room", false, true)

	all, err := c.household.ListRooms(ctx, connect.NewRequest(&api.ListRoomsRequest{}))
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(all.Msg.Rooms) != 2 {
		t.Errorf("expected 2 rooms, got %d", len(all.Msg.Rooms))
	}

	reservable, err := c.household.ListRooms(ctx, connect.NewRequest(&api.ListRoomsRequest{ReservableOnly: true}))
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(reservable.Msg.Rooms) != 1 || reservable.Msg.Rooms[0].Name != "Living Room" {
		t.Errorf("unexpected reservable rooms %+v", reservable.Msg.Rooms)
	}

	kitchen.Reservable = true
	updated, err := c.household.UpdateRoom(ctx, connect.NewRequest(&api.UpdateRoomRequest{Room: kitchen}))
	if err != nil {
		t.Fatalf("UpdateRoom failed: %v", err)
	}
	if !updated.Msg.Rooms[0].Reservable || !updated.Msg.Rooms[0].InChoreRotation {
		t.Errorf("expected both flags set, got %+v", updated.Msg.Rooms[0])
	}

	_, err = c.household.UpdateRoom(ctx, connect.NewRequest(&api.UpdateRoomRequest{Room: api.Room{ID: "ghost", Name: "Attic"}}))
	assertCode(t, err, connect.CodeNotFound)

	deleted, err := c.household.DeleteRoom(ctx, connect.NewRequest(&api.DeleteRoomRequest{ID: kitchen.ID}))
	if err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}
	if len(deleted.Msg.Rooms) != 1 {
		t.Errorf("expected 1 room after delete, got %d", len(deleted.Msg.Rooms))
	}
}
