// Package schedule manages the shared calendar, room reservations and
// roommate availability.
package schedule

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
)

// clockLayout is the HH:MM time-of-day format used by events.
const clockLayout = "15:04"

// RoomLister provides the rooms that can be reserved.
type RoomLister interface {
	Rooms(ctx context.Context) ([]models.Room, error)
}

// Service stores events, reservations and availability.
type Service struct {
	store storage.Store
	rooms RoomLister
	mu    sync.Mutex
}

// NewService creates a schedule Service.
func NewService(store storage.Store, rooms RoomLister) *Service {
	return &Service{store: store, rooms: rooms}
}

// Events returns every calendar event in creation order.
func (s *Service) Events(ctx context.Context) ([]models.CalendarEvent, error) {
	return storage.Load(ctx, s.store, storage.KeyEvents, []models.CalendarEvent{})
}

// CreateEvent validates and stores a new event. The ID is assigned here.
func (s *Service) CreateEvent(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	event.Description = strings.TrimSpace(event.Description)
	if event.Description == "" {
		return models.CalendarEvent{}, fmt.Errorf("%w: description required", models.ErrInvalidInput)
	}
	if err := validateDate(event.Date); err != nil {
		return models.CalendarEvent{}, err
	}
	if event.Time != "" {
		if _, err := time.Parse(clockLayout, event.Time); err != nil {
			return models.CalendarEvent{}, fmt.Errorf("%w: time %q is not HH:MM", models.ErrInvalidInput, event.Time)
		}
	}
	event.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.Events(ctx)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	if err := storage.Save(ctx, s.store, storage.KeyEvents, append(events, event)); err != nil {
		return models.CalendarEvent{}, err
	}

	slog.Info("Event created", "event_id", event.ID, "date", event.Date)
	return event, nil
}

// DeleteEvent removes an event. Unknown IDs are ignored.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.Events(ctx)
	if err != nil {
		return err
	}
	events = slices.DeleteFunc(events, func(e models.CalendarEvent) bool { return e.ID == id })
	return storage.Save(ctx, s.store, storage.KeyEvents, events)
}

// EventsForDates returns the events falling on any of dates, ordered by
// date then time.
func (s *Service) EventsForDates(ctx context.Context, dates []string) ([]models.CalendarEvent, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CalendarEvent, 0, len(events))
	for _, e := range events {
		if slices.Contains(dates, e.Date) {
			matched = append(matched, e)
		}
	}
	slices.SortStableFunc(matched, func(a, b models.CalendarEvent) int {
		return cmp.Or(strings.Compare(a.Date, b.Date), strings.Compare(a.Time, b.Time))
	})
	return matched, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", models.ErrInvalidInput, date)
	}
	return nil
}
