package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/pkg/api"
	"github.com/mmynk/househub/pkg/api/apiconnect"
)

// HouseholdService implements the Connect HouseholdService
type HouseholdService struct {
	apiconnect.UnimplementedHouseholdServiceHandler
	registry *household.Registry
}

// NewHouseholdService creates a new HouseholdService over the registry.
func NewHouseholdService(registry *household.Registry) *HouseholdService {
	return &HouseholdService{registry: registry}
}

// ListRoommates returns every roommate in rotation order.
func (s *HouseholdService) ListRoommates(ctx context.Context, req *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	roommates, err := s.registry.Roommates(ctx)
	if err != nil {
		return nil, toConnectError("ListRoommates", err)
	}
	return connect.NewResponse(&api.ListRoommatesResponse{Roommates: roommatesToAPI(roommates)}), nil
}

// AddRoommate appends a roommate to the end of the rotation order.
func (s *HouseholdService) AddRoommate(ctx context.Context, req *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	slog.Info("AddRoommate request received", "name", req.Msg.Name)

	roommate, err := s.registry.AddRoommate(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError("AddRoommate", err)
	}
	return connect.NewResponse(&api.AddRoommateResponse{Roommate: roommateToAPI(roommate)}), nil
}

// DeleteRoommate removes a roommate. References elsewhere are left dangling.
func (s *HouseholdService) DeleteRoommate(ctx context.Context, req *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error) {
	slog.Info("DeleteRoommate request received", "roommate_id", req.Msg.ID)

	roommates, err := s.registry.DeleteRoommate(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("DeleteRoommate", err)
	}
	return connect.NewResponse(&api.DeleteRoommateResponse{Roommates: roommatesToAPI(roommates)}), nil
}

// ListRooms returns every room, or only reservable ones.
func (s *HouseholdService) ListRooms(ctx context.Context, req *connect.Request[api.ListRoomsRequest]) (*connect.Response[api.ListRoomsResponse], error) {
	rooms, err := s.registry.Rooms(ctx)
	if err != nil {
		return nil, toConnectError("ListRooms", err)
	}
	if req.Msg.ReservableOnly {
		rooms = household.ReservableRooms(rooms)
	}
	return connect.NewResponse(&api.ListRoomsResponse{Rooms: roomsToAPI(rooms)}), nil
}

// AddRoom creates a room.
func (s *HouseholdService) AddRoom(ctx context.Context, req *connect.Request[api.AddRoomRequest]) (*connect.Response[api.AddRoomResponse], error) {
	slog.Info("AddRoom request received",
		"name", req.Msg.Name,
		"in_chore_rotation", req.Msg.InChoreRotation,
		"reservable", req.Msg.Reservable,
	)

	room, err := s.registry.AddRoom(ctx, req.Msg.Name, req.Msg.InChoreRotation, req.Msg.Reservable)
	if err != nil {
		return nil, toConnectError("AddRoom", err)
	}
	return connect.NewResponse(&api.AddRoomResponse{Room: roomToAPI(room)}), nil
}

// UpdateRoom replaces a room's name and flags.
func (s *HouseholdService) UpdateRoom(ctx context.Context, req *connect.Request[api.UpdateRoomRequest]) (*connect.Response[api.UpdateRoomResponse], error) {
	slog.Info("UpdateRoom request received", "room_id", req.Msg.Room.ID)

	rooms, err := s.registry.UpdateRoom(ctx, models.Room{
		ID:              req.Msg.Room.ID,
		Name:            req.Msg.Room.Name,
		InChoreRotation: req.Msg.Room.InChoreRotation,
		Reservable:      req.Msg.Room.Reservable,
	})
	if err != nil {
		return nil, toConnectError("UpdateRoom", err)
	}
	return connect.NewResponse(&api.UpdateRoomResponse{Rooms: roomsToAPI(rooms)}), nil
}

// DeleteRoom removes a room.
func (s *HouseholdService) DeleteRoom(ctx context.Context, req *connect.Request[api.DeleteRoomRequest]) (*connect.Response[api.DeleteRoomResponse], error) {
	slog.Info("DeleteRoom request received", "room_id", req.Msg.ID)

	rooms, err := s.registry.DeleteRoom(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("DeleteRoom", err)
	}
	return connect.NewResponse(&api.DeleteRoomResponse{Rooms: roomsToAPI(rooms)}), nil
}
