package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
)

// Availability returns every roommate's availability entries.
func (s *Service) Availability(ctx context.Context) ([]models.AvailabilityEntry, error) {
	return storage.Load(ctx, s.store, storage.KeyAvailability, []models.AvailabilityEntry{})
}

// SetAvailabilityForRoommate replaces all of a roommate's entries with
// entries. Each stored entry gets a fresh ID and the roommate's ID.
func (s *Service) SetAvailabilityForRoommate(ctx context.Context, roommateID string, entries []models.AvailabilityEntry) ([]models.AvailabilityEntry, error) {
	if roommateID == "" {
		return nil, fmt.Errorf("%w: roommate required", models.ErrInvalidInput)
	}
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day of week %d out of range", models.ErrInvalidInput, e.DayOfWeek)
		}
		if e.Hour < 0 || e.Hour > 23 {
			return nil, fmt.Errorf("%w: hour %d out of range", models.ErrInvalidInput, e.Hour)
		}
		if !e.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidInput, e.Status)
		}
		if e.SpecificDate != "" {
			if err := validateDate(e.SpecificDate); err != nil {
				return nil, err
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.Availability(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.AvailabilityEntry, 0, len(all)+len(entries))
	for _, e := range all {
		if e.RoommateID != roommateID {
			updated = append(updated, e)
		}
	}
	for _, e := range entries {
		e.ID = uuid.New().String()
		e.RoommateID = roommateID
		updated = append(updated, e)
	}

	if err := storage.Save(ctx, s.store, storage.KeyAvailability, updated); err != nil {
		return nil, err
	}

	slog.Info("Availability updated", "roommate_id", roommateID, "entries", len(entries))
	return updated, nil
}

// ForDay returns the entries for dayOfWeek (0 is Sunday).
func ForDay(entries []models.AvailabilityEntry, dayOfWeek int) []models.AvailabilityEntry {
	matched := make([]models.AvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		if e.DayOfWeek == dayOfWeek {
			matched = append(matched, e)
		}
	}
	return matched
}
