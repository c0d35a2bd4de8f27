package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/schedule"
	"github.com/mmynk/househub/pkg/api"
	"github.com/mmynk/househub/pkg/api/apiconnect"
)

// ScheduleService implements the Connect ScheduleService
type ScheduleService struct {
	apiconnect.UnimplementedScheduleServiceHandler
	schedule *schedule.Service
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(sched *schedule.Service) *ScheduleService {
	return &ScheduleService{schedule: sched}
}

// ListEvents returns calendar events, optionally limited to some dates.
func (s *ScheduleService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	var events []models.CalendarEvent
	var err error
	if len(req.Msg.Dates) > 0 {
		events, err = s.schedule.EventsForDates(ctx, req.Msg.Dates)
	} else {
		events, err = s.schedule.Events(ctx)
	}
	if err != nil {
		return nil, toConnectError("ListEvents", err)
	}

	out := make([]api.Event, len(events))
	for i, e := range events {
		out[i] = eventToAPI(e)
	}
	return connect.NewResponse(&api.ListEventsResponse{Events: out}), nil
}

// CreateEvent adds a calendar event.
func (s *ScheduleService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	slog.Info("CreateEvent request received", "date", req.Msg.Date, "created_by", req.Msg.CreatedBy)

	event, err := s.schedule.CreateEvent(ctx, models.CalendarEvent{
		Date:        req.Msg.Date,
		Time:        req.Msg.Time,
		Description: req.Msg.Description,
		CreatedBy:   req.Msg.CreatedBy,
	})
	if err != nil {
		return nil, toConnectError("CreateEvent", err)
	}
	return connect.NewResponse(&api.CreateEventResponse{Event: eventToAPI(event)}), nil
}

// DeleteEvent removes a calendar event.
func (s *ScheduleService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	slog.Info("DeleteEvent request received", "event_id", req.Msg.ID)

	if err := s.schedule.DeleteEvent(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteEvent", err)
	}
	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}

// ListReservations returns room bookings, optionally for one date.
func (s *ScheduleService) ListReservations(ctx context.Context, req *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error) {
	var reservations []models.Reservation
	var err error
	if req.Msg.Date != "" {
		reservations, err = s.schedule.ReservationsForDate(ctx, req.Msg.Date)
	} else {
		reservations, err = s.schedule.Reservations(ctx)
	}
	if err != nil {
		return nil, toConnectError("ListReservations", err)
	}

	out := make([]api.Reservation, len(reservations))
	for i, r := range reservations {
		out[i] = reservationToAPI(r)
	}
	return connect.NewResponse(&api.ListReservationsResponse{Reservations: out}), nil
}

// CreateReservation books a room for one hour.
func (s *ScheduleService) CreateReservation(ctx context.Context, req *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error) {
	slog.Info("CreateReservation request received",
		"room_id", req.Msg.RoomID,
		"date", req.Msg.Date,
		"hour", req.Msg.Hour,
	)

	reservation, err := s.schedule.CreateReservation(ctx, models.Reservation{
		RoomID:     req.Msg.RoomID,
		Date:       req.Msg.Date,
		Hour:       req.Msg.Hour,
		RoommateID: req.Msg.RoommateID,
		Reason:     req.Msg.Reason,
	})
	if err != nil {
		return nil, toConnectError("CreateReservation", err)
	}
	return connect.NewResponse(&api.CreateReservationResponse{Reservation: reservationToAPI(reservation)}), nil
}

// DeleteReservation cancels a booking.
func (s *ScheduleService) DeleteReservation(ctx context.Context, req *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error) {
	slog.Info("DeleteReservation request received", "reservation_id", req.Msg.ID)

	if err := s.schedule.DeleteReservation(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteReservation", err)
	}
	return connect.NewResponse(&api.DeleteReservationResponse{}), nil
}

// GetAvailability returns availability entries, optionally for one weekday.
func (s *ScheduleService) GetAvailability(ctx context.Context, req *connect.Request[api.GetAvailabilityRequest]) (*connect.Response[api.GetAvailabilityResponse], error) {
	entries, err := s.schedule.Availability(ctx)
	if err != nil {
		return nil, toConnectError("GetAvailability", err)
	}
	if req.Msg.DayOfWeek != nil {
		entries = schedule.ForDay(entries, *req.Msg.DayOfWeek)
	}
	return connect.NewResponse(&api.GetAvailabilityResponse{Entries: availabilityToAPI(entries)}), nil
}

// SetAvailability replaces one roommate's availability.
func (s *ScheduleService) SetAvailability(ctx context.Context, req *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error) {
	slog.Info("SetAvailability request received",
		"roommate_id", req.Msg.RoommateID,
		"entries", len(req.Msg.Entries),
	)

	entries, err := s.schedule.SetAvailabilityForRoommate(ctx, req.Msg.RoommateID, availabilityFromAPI(req.Msg.Entries))
	if err != nil {
		return nil, toConnectError("SetAvailability", err)
	}
	return connect.NewResponse(&api.SetAvailabilityResponse{Entries: availabilityToAPI(entries)}), nil
}
