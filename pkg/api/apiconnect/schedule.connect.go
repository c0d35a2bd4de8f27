package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

// ScheduleServiceName is the fully-qualified name of the ScheduleService service.
const ScheduleServiceName = "househub.v1.ScheduleService"

// Procedure paths, exposed as constants for use in interceptors and routing.
const (
	ScheduleServiceListEventsProcedure        = "/househub.v1.ScheduleService/ListEvents"
	ScheduleServiceCreateEventProcedure       = "/househub.v1.ScheduleService/CreateEvent"
	ScheduleServiceDeleteEventProcedure       = "/househub.v1.ScheduleService/DeleteEvent"
	ScheduleServiceListReservationsProcedure  = "/househub.v1.ScheduleService/ListReservations"
	ScheduleServiceCreateReservationProcedure = "/househub.v1.ScheduleService/CreateReservation"
	ScheduleServiceDeleteReservationProcedure = "/househub.v1.ScheduleService/DeleteReservation"
	ScheduleServiceGetAvailabilityProcedure   = "/househub.v1.ScheduleService/GetAvailability"
	ScheduleServiceSetAvailabilityProcedure   = "/househub.v1.ScheduleService/SetAvailability"
)

// ScheduleServiceClient is a client for the househub.v1.ScheduleService service.
type ScheduleServiceClient interface {
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	ListReservations(context.Context, *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error)
	CreateReservation(context.Context, *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error)
	DeleteReservation(context.Context, *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error)
	GetAvailability(context.Context, *connect.Request[api.GetAvailabilityRequest]) (*connect.Response[api.GetAvailabilityResponse], error)
	SetAvailability(context.Context, *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error)
}

// NewScheduleServiceClient constructs a client for the househub.v1.ScheduleService service.
// baseURL is the server's scheme and host, such as http://localhost:8080.
func NewScheduleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ScheduleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &scheduleServiceClient{
		listEvents:        connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](httpClient, baseURL+ScheduleServiceListEventsProcedure, opts...),
		createEvent:       connect.NewClient[api.CreateEventRequest, api.CreateEventResponse](httpClient, baseURL+ScheduleServiceCreateEventProcedure, opts...),
		deleteEvent:       connect.NewClient[api.DeleteEventRequest, api.DeleteEventResponse](httpClient, baseURL+ScheduleServiceDeleteEventProcedure, opts...),
		listReservations:  connect.NewClient[api.ListReservationsRequest, api.ListReservationsResponse](httpClient, baseURL+ScheduleServiceListReservationsProcedure, opts...),
		createReservation: connect.NewClient[api.CreateReservationRequest, api.CreateReservationResponse](httpClient, baseURL+ScheduleServiceCreateReservationProcedure, opts...),
		deleteReservation: connect.NewClient[api.DeleteReservationRequest, api.DeleteReservationResponse](httpClient, baseURL+ScheduleServiceDeleteReservationProcedure, opts...),
		getAvailability:   connect.NewClient[api.GetAvailabilityRequest, api.GetAvailabilityResponse](httpClient, baseURL+ScheduleServiceGetAvailabilityProcedure, opts...),
		setAvailability:   connect.NewClient[api.SetAvailabilityRequest, api.SetAvailabilityResponse](httpClient, baseURL+ScheduleServiceSetAvailabilityProcedure, opts...),
	}
}

type scheduleServiceClient struct {
	listEvents        *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	createEvent       *connect.Client[api.CreateEventRequest, api.CreateEventResponse]
	deleteEvent       *connect.Client[api.DeleteEventRequest, api.DeleteEventResponse]
	listReservations  *connect.Client[api.ListReservationsRequest, api.ListReservationsResponse]
	createReservation *connect.Client[api.CreateReservationRequest, api.CreateReservationResponse]
	deleteReservation *connect.Client[api.DeleteReservationRequest, api.DeleteReservationResponse]
	getAvailability   *connect.Client[api.GetAvailabilityRequest, api.GetAvailabilityResponse]
	setAvailability   *connect.Client[api.SetAvailabilityRequest, api.SetAvailabilityResponse]
}

func (c *scheduleServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) ListReservations(ctx context.Context, req *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error) {
	return c.listReservations.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) CreateReservation(ctx context.Context, req *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error) {
	return c.createReservation.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) DeleteReservation(ctx context.Context, req *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error) {
	return c.deleteReservation.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) GetAvailability(ctx context.Context, req *connect.Request[api.GetAvailabilityRequest]) (*connect.Response[api.GetAvailabilityResponse], error) {
	return c.getAvailability.CallUnary(ctx, req)
}

func (c *scheduleServiceClient) SetAvailability(ctx context.Context, req *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error) {
	return c.setAvailability.CallUnary(ctx, req)
}

// ScheduleServiceHandler is implemented by the server side of househub.v1.ScheduleService.
type ScheduleServiceHandler interface {
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	ListReservations(context.Context, *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error)
	CreateReservation(context.Context, *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error)
	DeleteReservation(context.Context, *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error)
	GetAvailability(context.Context, *connect.Request[api.GetAvailabilityRequest]) (*connect.Response[api.GetAvailabilityResponse], error)
	SetAvailability(context.Context, *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error)
}

// NewScheduleServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewScheduleServiceHandler(svc ScheduleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	listEventsHandler := connect.NewUnaryHandler(ScheduleServiceListEventsProcedure, svc.ListEvents, opt)
	createEventHandler := connect.NewUnaryHandler(ScheduleServiceCreateEventProcedure, svc.CreateEvent, opt)
	deleteEventHandler := connect.NewUnaryHandler(ScheduleServiceDeleteEventProcedure, svc.DeleteEvent, opt)
	listReservationsHandler := connect.NewUnaryHandler(ScheduleServiceListReservationsProcedure, svc.ListReservations, opt)
	createReservationHandler := connect.NewUnaryHandler(ScheduleServiceCreateReservationProcedure, svc.CreateReservation, opt)
	deleteReservationHandler := connect.NewUnaryHandler(ScheduleServiceDeleteReservationProcedure, svc.DeleteReservation, opt)
	getAvailabilityHandler := connect.NewUnaryHandler(ScheduleServiceGetAvailabilityProcedure, svc.GetAvailability, opt)
	setAvailabilityHandler := connect.NewUnaryHandler(ScheduleServiceSetAvailabilityProcedure, svc.SetAvailability, opt)
	return "/househub.v1.ScheduleService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ScheduleServiceListEventsProcedure:
			listEventsHandler.ServeHTTP(w, r)
		case ScheduleServiceCreateEventProcedure:
			createEventHandler.ServeHTTP(w, r)
		case ScheduleServiceDeleteEventProcedure:
			deleteEventHandler.ServeHTTP(w, r)
		case ScheduleServiceListReservationsProcedure:
			listReservationsHandler.ServeHTTP(w, r)
		case ScheduleServiceCreateReservationProcedure:
			createReservationHandler.ServeHTTP(w, r)
		case ScheduleServiceDeleteReservationProcedure:
			deleteReservationHandler.ServeHTTP(w, r)
		case ScheduleServiceGetAvailabilityProcedure:
			getAvailabilityHandler.ServeHTTP(w, r)
		case ScheduleServiceSetAvailabilityProcedure:
			setAvailabilityHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedScheduleServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedScheduleServiceHandler struct{}

func (UnimplementedScheduleServiceHandler) ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.ListEvents is not implemented"))
}

func (UnimplementedScheduleServiceHandler) CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.CreateEvent is not implemented"))
}

func (UnimplementedScheduleServiceHandler) DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.DeleteEvent is not implemented"))
}

func (UnimplementedScheduleServiceHandler) ListReservations(context.Context, *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.ListReservations is not implemented"))
}

func (UnimplementedScheduleServiceHandler) CreateReservation(context.Context, *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.CreateReservation is not implemented"))
}

func (UnimplementedScheduleServiceHandler) DeleteReservation(context.Context, *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.DeleteReservation is not implemented"))
}

func (UnimplementedScheduleServiceHandler) GetAvailability(context.Context, *connect.Request[api.GetAvailabilityRequest]) (*connect.Response[api.GetAvailabilityResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.GetAvailability is not implemented"))
}

func (UnimplementedScheduleServiceHandler) SetAvailability(context.Context, *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ScheduleService.SetAvailability is not implemented"))
}
