// Package chores runs the weekly chore rotation and the completion state
// machine for room assignments, singleton duties and custom chores.
package chores

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/rotation"
	"github.com/mmynk/househub/internal/storage"
)

// Roster supplies the current household.
type Roster interface {
	Roommates(ctx context.Context) ([]models.Roommate, error)
	Rooms(ctx context.Context) ([]models.Room, error)
}

// Service owns the week counter and every chore collection.
// Each operation reads whole collections, derives new ones and writes them
// back; mu serializes those cycles.
type Service struct {
	store  storage.Store
	roster Roster
	now    func() time.Time
	mu     sync.Mutex
}

// NewService creates a chore Service.
func NewService(store storage.Store, roster Roster) *Service {
	return &Service{
		store:  store,
		roster: roster,
		now:    time.Now,
	}
}

// CurrentWeek returns the week counter, starting at 1.
func (s *Service) CurrentWeek(ctx context.Context) (int, error) {
	week, err := storage.Load(ctx, s.store, storage.KeyChoresWeek, 1)
	if err != nil {
		return 0, err
	}
	if week < 1 {
		slog.Warn("Ignoring out-of-range week counter", "week", week)
		return 1, nil
	}
	return week, nil
}

// StartDate returns the day chores were first tracked (YYYY-MM-DD),
// recording today on first call.
func (s *Service) StartDate(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := storage.Load(ctx, s.store, storage.KeyChoresStartDate, "")
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	today := s.now().Format(time.DateOnly)
	if err := storage.Save(ctx, s.store, storage.KeyChoresStartDate, today); err != nil {
		return "", err
	}
	return today, nil
}

// Assignments returns the full assignment history across all weeks.
func (s *Service) Assignments(ctx context.Context) ([]models.ChoreAssignment, error) {
	return storage.Load(ctx, s.store, storage.KeyChoreAssignments, []models.ChoreAssignment{})
}

// WeekAssignments returns the current week and its rows. The first time a
// week is observed with no rows, a rotation is generated from the current
// roster and appended to history. Rows that already exist are never
// regenerated, even if the roster has changed since.
func (s *Service) WeekAssignments(ctx context.Context) (int, []models.ChoreAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekAssignments(ctx)
}

func (s *Service) weekAssignments(ctx context.Context) (int, []models.ChoreAssignment, error) {
	week, err := s.CurrentWeek(ctx)
	if err != nil {
		return 0, nil, err
	}

	all, err := s.Assignments(ctx)
	if err != nil {
		return 0, nil, err
	}

	current := ForWeek(all, week)
	if len(current) > 0 {
		return week, current, nil
	}

	fresh, err := s.buildRotation(ctx, week)
	if err != nil {
		return 0, nil, err
	}
	if len(fresh) == 0 {
		return week, current, nil
	}

	if err := storage.Save(ctx, s.store, storage.KeyChoreAssignments, append(all, fresh...)); err != nil {
		return 0, nil, err
	}
	slog.Info("Generated chore rotation", "week", week, "assignments", len(fresh))
	return week, fresh, nil
}

// buildRotation runs the rotation engine against the live roster.
func (s *Service) buildRotation(ctx context.Context, week int) ([]models.ChoreAssignment, error) {
	roommates, err := s.roster.Roommates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roommates: %w", err)
	}
	rooms, err := s.roster.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	return rotation.Build(
		models.RoommateIDs(roommates),
		models.RoomIDs(household.ChoreRooms(rooms)),
		week,
	), nil
}

// CompleteAssignment marks the current week's row for roomID as done and
// returns the current week's rows.
func (s *Service) CompleteAssignment(ctx context.Context, roomID string) ([]models.ChoreAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week, err := s.CurrentWeek(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.Assignments(ctx)
	if err != nil {
		return nil, err
	}

	updated := MarkAssignmentComplete(all, roomID, week)
	if err := storage.Save(ctx, s.store, storage.KeyChoreAssignments, updated); err != nil {
		return nil, err
	}
	return ForWeek(updated, week), nil
}

// Duties returns the dishwasher and trash duties.
func (s *Service) Duties(ctx context.Context) ([]models.DishwasherTrash, error) {
	return storage.Load(ctx, s.store, storage.KeyDishwasherTrash, DefaultDuties())
}

// CompleteDuty hands dutyType to the next roommate. With no roommates the
// duties are returned unchanged.
func (s *Service) CompleteDuty(ctx context.Context, dutyType models.DutyType) ([]models.DishwasherTrash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	duties, err := s.Duties(ctx)
	if err != nil {
		return nil, err
	}
	roommates, err := s.roster.Roommates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roommates: %w", err)
	}

	updated, err := CompleteDuty(duties, dutyType, len(roommates))
	if errors.Is(err, models.ErrInvalidState) {
		slog.Debug("Skipping duty completion in empty household", "duty", dutyType)
		return duties, nil
	}
	if err != nil {
		return nil, err
	}

	if err := storage.Save(ctx, s.store, storage.KeyDishwasherTrash, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// CustomChores returns every custom chore, migrated to the current schema.
func (s *Service) CustomChores(ctx context.Context) ([]models.CustomChore, error) {
	chores, err := storage.Load(ctx, s.store, storage.KeyCustomChores, []models.CustomChore{})
	if err != nil {
		return nil, err
	}
	return MigrateCustomChores(chores), nil
}

// AddCustomChore creates a custom chore. For recurring chores assignedTo is
// ignored and startingIndex seeds the cursor.
func (s *Service) AddCustomChore(ctx context.Context, name string, assignedTo *string, recurring bool, startingIndex int) (models.CustomChore, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CustomChore{}, fmt.Errorf("%w: chore name required", models.ErrInvalidInput)
	}
	if assignedTo != nil && *assignedTo == "" {
		assignedTo = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chores, err := s.CustomChores(ctx)
	if err != nil {
		return models.CustomChore{}, err
	}

	chore := NewCustomChore(name, assignedTo, recurring, startingIndex)
	if err := storage.Save(ctx, s.store, storage.KeyCustomChores, append(chores, chore)); err != nil {
		return models.CustomChore{}, err
	}

	slog.Info("Custom chore added", "chore_id", chore.ID, "name", chore.Name, "recurring", recurring)
	return chore, nil
}

// CompleteCustomChore applies a completion to the chore with the given ID.
// A recurring chore in an empty household is left unchanged.
func (s *Service) CompleteCustomChore(ctx context.Context, id string) ([]models.CustomChore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chores, err := s.CustomChores(ctx)
	if err != nil {
		return nil, err
	}
	roommates, err := s.roster.Roommates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roommates: %w", err)
	}

	updated, err := CompleteCustomChore(chores, id, len(roommates))
	if errors.Is(err, models.ErrInvalidState) {
		slog.Debug("Skipping recurring chore completion in empty household", "chore_id", id)
		return chores, nil
	}
	if err != nil {
		return nil, err
	}

	if err := storage.Save(ctx, s.store, storage.KeyCustomChores, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCustomChore removes a custom chore. Unknown IDs are ignored.
func (s *Service) DeleteCustomChore(ctx context.Context, id string) ([]models.CustomChore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chores, err := s.CustomChores(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.CustomChore, 0, len(chores))
	for _, c := range chores {
		if c.ID != id {
			updated = append(updated, c)
		}
	}
	if err := storage.Save(ctx, s.store, storage.KeyCustomChores, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AdvanceWeek moves to the next week. It increments the counter, appends a
// fresh rotation for the new week to history and resets both duties to
// pending without moving their cursors. Custom chores are not week-scoped
// and are left untouched.
func (s *Service) AdvanceWeek(ctx context.Context) (int, []models.ChoreAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week, err := s.CurrentWeek(ctx)
	if err != nil {
		return 0, nil, err
	}
	next := week + 1
	if err := storage.Save(ctx, s.store, storage.KeyChoresWeek, next); err != nil {
		return 0, nil, err
	}

	all, err := s.Assignments(ctx)
	if err != nil {
		return 0, nil, err
	}
	fresh := ForWeek(all, next)
	if len(fresh) == 0 {
		fresh, err = s.buildRotation(ctx, next)
		if err != nil {
			return 0, nil, err
		}
		if err := storage.Save(ctx, s.store, storage.KeyChoreAssignments, append(all, fresh...)); err != nil {
			return 0, nil, err
		}
	}

	duties, err := s.Duties(ctx)
	if err != nil {
		return 0, nil, err
	}
	if err := storage.Save(ctx, s.store, storage.KeyDishwasherTrash, ResetDuties(duties)); err != nil {
		return 0, nil, err
	}

	slog.Info("Week advanced", "week", next, "assignments", len(fresh))
	return next, fresh, nil
}
