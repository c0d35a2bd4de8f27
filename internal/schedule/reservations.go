package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
)

// Reservations returns every reservation in creation order.
func (s *Service) Reservations(ctx context.Context) ([]models.Reservation, error) {
	return storage.Load(ctx, s.store, storage.KeyReservations, []models.Reservation{})
}

// CreateReservation books one hour of a reservable room. A slot already
// held for the same room, date and hour is rejected.
func (s *Service) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	if r.Hour < 0 || r.Hour > 23 {
		return models.Reservation{}, fmt.Errorf("%w: hour %d out of range", models.ErrInvalidInput, r.Hour)
	}
	if err := validateDate(r.Date); err != nil {
		return models.Reservation{}, err
	}
	if r.RoommateID == "" {
		return models.Reservation{}, fmt.Errorf("%w: roommate required", models.ErrInvalidInput)
	}

	rooms, err := s.rooms.Rooms(ctx)
	if err != nil {
		return models.Reservation{}, err
	}
	idx := slices.IndexFunc(rooms, func(room models.Room) bool { return room.ID == r.RoomID })
	if idx < 0 {
		return models.Reservation{}, fmt.Errorf("%w: room %s", models.ErrNotFound, r.RoomID)
	}
	if !rooms[idx].Reservable {
		return models.Reservation{}, fmt.Errorf("%w: room %s is not reservable", models.ErrInvalidState, rooms[idx].Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.Reservations(ctx)
	if err != nil {
		return models.Reservation{}, err
	}
	for _, existing := range all {
		if existing.RoomID == r.RoomID && existing.Date == r.Date && existing.Hour == r.Hour {
			return models.Reservation{}, fmt.Errorf("%w: %s at %02d:00 on %s is already booked",
				models.ErrInvalidState, rooms[idx].Name, r.Hour, r.Date)
		}
	}

	r.ID = uuid.New().String()
	if err := storage.Save(ctx, s.store, storage.KeyReservations, append(all, r)); err != nil {
		return models.Reservation{}, err
	}

	slog.Info("Room reserved", "reservation_id", r.ID, "room_id", r.RoomID, "date", r.Date, "hour", r.Hour)
	return r, nil
}

// DeleteReservation cancels a reservation. Unknown IDs are ignored.
func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.Reservations(ctx)
	if err != nil {
		return err
	}
	all = slices.DeleteFunc(all, func(r models.Reservation) bool { return r.ID == id })
	return storage.Save(ctx, s.store, storage.KeyReservations, all)
}

// ReservationsForDate returns the reservations on date.
func (s *Service) ReservationsForDate(ctx context.Context, date string) ([]models.Reservation, error) {
	all, err := s.Reservations(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if r.Date == date {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
