package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/internal/chores"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/pkg/api"
	"github.com/mmynk/househub/pkg/api/apiconnect"
)

// ChoreService implements the Connect ChoreService
type ChoreService struct {
	apiconnect.UnimplementedChoreServiceHandler
	chores   *chores.Service
	registry *household.Registry
}

// NewChoreService creates a new ChoreService.
func NewChoreService(choreSvc *chores.Service, registry *household.Registry) *ChoreService {
	return &ChoreService{chores: choreSvc, registry: registry}
}

// snapshot captures roommate order and display names for rendering.
func (s *ChoreService) snapshot(ctx context.Context) ([]string, *household.Directory, error) {
	roommates, err := s.registry.Roommates(ctx)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := s.registry.Rooms(ctx)
	if err != nil {
		return nil, nil, err
	}
	return models.RoommateIDs(roommates), household.NewDirectory(roommates, rooms), nil
}

// GetWeek returns the current week's rotation along with the duties and
// custom chores.
func (s *ChoreService) GetWeek(ctx context.Context, req *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error) {
	week, assignments, err := s.chores.WeekAssignments(ctx)
	if err != nil {
		return nil, toConnectError("GetWeek", err)
	}
	startDate, err := s.chores.StartDate(ctx)
	if err != nil {
		return nil, toConnectError("GetWeek", err)
	}
	duties, err := s.chores.Duties(ctx)
	if err != nil {
		return nil, toConnectError("GetWeek", err)
	}
	custom, err := s.chores.CustomChores(ctx)
	if err != nil {
		return nil, toConnectError("GetWeek", err)
	}
	ids, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("GetWeek", err)
	}

	return connect.NewResponse(&api.GetWeekResponse{
		Week:         week,
		StartDate:    startDate,
		Assignments:  assignmentsToAPI(assignments, dir),
		Duties:       dutiesToAPI(duties, ids, dir),
		CustomChores: customChoresToAPI(custom, ids, dir),
	}), nil
}

// CompleteAssignment marks a room's current-week assignment as done.
func (s *ChoreService) CompleteAssignment(ctx context.Context, req *connect.Request[api.CompleteAssignmentRequest]) (*connect.Response[api.CompleteAssignmentResponse], error) {
	slog.Info("CompleteAssignment request received", "room_id", req.Msg.RoomID)

	assignments, err := s.chores.CompleteAssignment(ctx, req.Msg.RoomID)
	if err != nil {
		return nil, toConnectError("CompleteAssignment", err)
	}
	_, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("CompleteAssignment", err)
	}
	return connect.NewResponse(&api.CompleteAssignmentResponse{Assignments: assignmentsToAPI(assignments, dir)}), nil
}

// CompleteDuty hands a duty to the next roommate.
func (s *ChoreService) CompleteDuty(ctx context.Context, req *connect.Request[api.CompleteDutyRequest]) (*connect.Response[api.CompleteDutyResponse], error) {
	slog.Info("CompleteDuty request received", "type", req.Msg.Type)

	duties, err := s.chores.CompleteDuty(ctx, models.DutyType(req.Msg.Type))
	if err != nil {
		return nil, toConnectError("CompleteDuty", err)
	}
	ids, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("CompleteDuty", err)
	}
	return connect.NewResponse(&api.CompleteDutyResponse{Duties: dutiesToAPI(duties, ids, dir)}), nil
}

// AddCustomChore creates a recurring or one-time chore.
func (s *ChoreService) AddCustomChore(ctx context.Context, req *connect.Request[api.AddCustomChoreRequest]) (*connect.Response[api.AddCustomChoreResponse], error) {
	slog.Info("AddCustomChore request received",
		"name", req.Msg.Name,
		"recurring", req.Msg.Recurring,
	)

	var assignedTo *string
	if req.Msg.AssignedTo != "" {
		assignedTo = &req.Msg.AssignedTo
	}
	chore, err := s.chores.AddCustomChore(ctx, req.Msg.Name, assignedTo, req.Msg.Recurring, req.Msg.StartingIndex)
	if err != nil {
		return nil, toConnectError("AddCustomChore", err)
	}
	ids, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("AddCustomChore", err)
	}
	return connect.NewResponse(&api.AddCustomChoreResponse{
		Chore: customChoresToAPI([]models.CustomChore{chore}, ids, dir)[0],
	}), nil
}

// CompleteCustomChore toggles a one-time chore or rotates a recurring one.
func (s *ChoreService) CompleteCustomChore(ctx context.Context, req *connect.Request[api.CompleteCustomChoreRequest]) (*connect.Response[api.CompleteCustomChoreResponse], error) {
	slog.Info("CompleteCustomChore request received", "chore_id", req.Msg.ID)

	updated, err := s.chores.CompleteCustomChore(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("CompleteCustomChore", err)
	}
	ids, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("CompleteCustomChore", err)
	}
	return connect.NewResponse(&api.CompleteCustomChoreResponse{Chores: customChoresToAPI(updated, ids, dir)}), nil
}

// DeleteCustomChore removes a custom chore.
func (s *ChoreService) DeleteCustomChore(ctx context.Context, req *connect.Request[api.DeleteCustomChoreRequest]) (*connect.Response[api.DeleteCustomChoreResponse], error) {
	slog.Info("DeleteCustomChore request received", "chore_id", req.Msg.ID)

	updated, err := s.chores.DeleteCustomChore(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("DeleteCustomChore", err)
	}
	ids, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("DeleteCustomChore", err)
	}
	return connect.NewResponse(&api.DeleteCustomChoreResponse{Chores: customChoresToAPI(updated, ids, dir)}), nil
}

// AdvanceWeek moves the household to the next week.
func (s *ChoreService) AdvanceWeek(ctx context.Context, req *connect.Request[api.AdvanceWeekRequest]) (*connect.Response[api.AdvanceWeekResponse], error) {
	week, assignments, err := s.chores.AdvanceWeek(ctx)
	if err != nil {
		return nil, toConnectError("AdvanceWeek", err)
	}
	_, dir, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("AdvanceWeek", err)
	}
	return connect.NewResponse(&api.AdvanceWeekResponse{
		Week:        week,
		Assignments: assignmentsToAPI(assignments, dir),
	}), nil
}

// GetBoard returns the per-roommate overview of the current week.
func (s *ChoreService) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	board, err := s.chores.Board(ctx)
	if err != nil {
		return nil, toConnectError("GetBoard", err)
	}
	startDate, err := s.chores.StartDate(ctx)
	if err != nil {
		return nil, toConnectError("GetBoard", err)
	}

	ids := make([]string, len(board.People))
	for i, p := range board.People {
		ids[i] = p.Roommate.ID
	}
	dir := board.Directory

	people := make([]api.PersonChores, len(board.People))
	for i, p := range board.People {
		people[i] = api.PersonChores{
			Roommate:  roommateToAPI(p.Roommate),
			Rotation:  assignmentsToAPI(p.Rotation, dir),
			Recurring: customChoresToAPI(p.Recurring, ids, dir),
			OneTime:   customChoresToAPI(p.OneTime, ids, dir),
			Duties:    dutiesToAPI(p.Duties, ids, dir),
		}
	}

	return connect.NewResponse(&api.GetBoardResponse{
		Board: api.Board{
			Week:       board.Week,
			StartDate:  startDate,
			People:     people,
			Unassigned: customChoresToAPI(board.Unassigned, ids, dir),
			Done:       board.Done,
			Total:      board.Total,
		},
	}), nil
}
