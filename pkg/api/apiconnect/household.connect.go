package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService service.
const HouseholdServiceName = "househub.v1.HouseholdService"

// Procedure paths, exposed as constants for use in interceptors and routing.
const (
	HouseholdServiceListRoommatesProcedure  = "/househub.v1.HouseholdService/ListRoommates"
	HouseholdServiceAddRoommateProcedure    = "/househub.v1.HouseholdService/AddRoommate"
	HouseholdServiceDeleteRoommateProcedure = "/househub.v1.HouseholdService/DeleteRoommate"
	HouseholdServiceListRoomsProcedure      = "/househub.v1.HouseholdService/ListRooms"
	HouseholdServiceAddRoomProcedure        = "/househub.v1.HouseholdService/AddRoom"
	HouseholdServiceUpdateRoomProcedure     = "/househub.v1.HouseholdService/UpdateRoom"
	HouseholdServiceDeleteRoomProcedure     = "/househub.v1.HouseholdService/DeleteRoom"
)

// HouseholdServiceClient is a client for the househub.v1.HouseholdService service.
type HouseholdServiceClient interface {
	ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error)
	AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error)
	DeleteRoommate(context.Context, *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error)
	ListRooms(context.Context, *connect.Request[api.ListRoomsRequest]) (*connect.Response[api.ListRoomsResponse], error)
	AddRoom(context.Context, *connect.Request[api.AddRoomRequest]) (*connect.Response[api.AddRoomResponse], error)
	UpdateRoom(context.Context, *connect.Request[api.UpdateRoomRequest]) (*connect.Response[api.UpdateRoomResponse], error)
	DeleteRoom(context.Context, *connect.Request[api.DeleteRoomRequest]) (*connect.Response[api.DeleteRoomResponse], error)
}

// NewHouseholdServiceClient constructs a client for the househub.v1.HouseholdService service.
// baseURL is the server's scheme and host, such as http://localhost:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &householdServiceClient{
		listRoommates:  connect.NewClient[api.ListRoommatesRequest, api.ListRoommatesResponse](httpClient, baseURL+HouseholdServiceListRoommatesProcedure, opts...),
		addRoommate:    connect.NewClient[api.AddRoommateRequest, api.AddRoommateResponse](httpClient, baseURL+HouseholdServiceAddRoommateProcedure, opts...),
		deleteRoommate: connect.NewClient[api.DeleteRoommateRequest, api.DeleteRoommateResponse](httpClient, baseURL+HouseholdServiceDeleteRoommateProcedure, opts...),
		listRooms:      connect.NewClient[api.ListRoomsRequest, api.ListRoomsResponse](httpClient, baseURL+HouseholdServiceListRoomsProcedure, opts...),
		addRoom:        connect.NewClient[api.AddRoomRequest, api.AddRoomResponse](httpClient, baseURL+HouseholdServiceAddRoomProcedure, opts...),
		updateRoom:     connect.NewClient[api.UpdateRoomRequest, api.UpdateRoomResponse](httpClient, baseURL+HouseholdServiceUpdateRoomProcedure, opts...),
		deleteRoom:     connect.NewClient[api.DeleteRoomRequest, api.DeleteRoomResponse](httpClient, baseURL+HouseholdServiceDeleteRoomProcedure, opts...),
	}
}

type householdServiceClient struct {
	listRoommates  *connect.Client[api.ListRoommatesRequest, api.ListRoommatesResponse]
	addRoommate    *connect.Client[api.AddRoommateRequest, api.AddRoommateResponse]
	deleteRoommate *connect.Client[api.DeleteRoommateRequest, api.DeleteRoommateResponse]
	listRooms      *connect.Client[api.ListRoomsRequest, api.ListRoomsResponse]
	addRoom        *connect.Client[api.AddRoomRequest, api.AddRoomResponse]
	updateRoom     *connect.Client[api.UpdateRoomRequest, api.UpdateRoomResponse]
	deleteRoom     *connect.Client[api.DeleteRoomRequest, api.DeleteRoomResponse]
}

func (c *householdServiceClient) ListRoommates(ctx context.Context, req *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	return c.listRoommates.CallUnary(ctx, req)
}

func (c *householdServiceClient) AddRoommate(ctx context.Context, req *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	return c.addRoommate.CallUnary(ctx, req)
}

func (c *householdServiceClient) DeleteRoommate(ctx context.Context, req *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error) {
	return c.deleteRoommate.CallUnary(ctx, req)
}

func (c *householdServiceClient) ListRooms(ctx context.Context, req *connect.Request[api.ListRoomsRequest]) (*connect.Response[api.ListRoomsResponse], error) {
	return c.listRooms.CallUnary(ctx, req)
}

func (c *householdServiceClient) AddRoom(ctx context.Context, req *connect.Request[api.AddRoomRequest]) (*connect.Response[api.AddRoomResponse], error) {
	return c.addRoom.CallUnary(ctx, req)
}

func (c *householdServiceClient) UpdateRoom(ctx context.Context, req *connect.Request[api.UpdateRoomRequest]) (*connect.Response[api.UpdateRoomResponse], error) {
	return c.updateRoom.CallUnary(ctx, req)
}

func (c *householdServiceClient) DeleteRoom(ctx context.Context, req *connect.Request[api.DeleteRoomRequest]) (*connect.Response[api.DeleteRoomResponse], error) {
	return c.deleteRoom.CallUnary(ctx, req)
}

// HouseholdServiceHandler is implemented by the server side of househub.v1.HouseholdService.
type HouseholdServiceHandler interface {
	ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error)
	AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error)
	DeleteRoommate(context.Context, *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error)
	ListRooms(context.Context, *connect.Request[api.ListRoomsRequest]) (*connect.Response[api.ListRoomsResponse], error)
	AddRoom(context.Context, *connect.Request[api.AddRoomRequest]) (*connect.Response[api.AddRoomResponse], error)
	UpdateRoom(context.Context, *connect.Request[api.UpdateRoomRequest]) (*connect.Response[api.UpdateRoomResponse], error)
	DeleteRoom(context.Context, *connect.Request[api.DeleteRoomRequest]) (*connect.Response[api.DeleteRoomResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	listRoommatesHandler := connect.NewUnaryHandler(HouseholdServiceListRoommatesProcedure, svc.ListRoommates, opt)
	addRoommateHandler := connect.NewUnaryHandler(HouseholdServiceAddRoommateProcedure, svc.AddRoommate, opt)
	deleteRoommateHandler := connect.NewUnaryHandler(HouseholdServiceDeleteRoommateProcedure, svc.DeleteRoommate, opt)
	listRoomsHandler := connect.NewUnaryHandler(HouseholdServiceListRoomsProcedure, svc.ListRooms, opt)
	addRoomHandler := connect.NewUnaryHandler(HouseholdServiceAddRoomProcedure, svc.AddRoom, opt)
	updateRoomHandler := connect.NewUnaryHandler(HouseholdServiceUpdateRoomProcedure, svc.UpdateRoom, opt)
	deleteRoomHandler := connect.NewUnaryHandler(HouseholdServiceDeleteRoomProcedure, svc.DeleteRoom, opt)
	return "/househub.v1.HouseholdService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case HouseholdServiceListRoommatesProcedure:
			listRoommatesHandler.ServeHTTP(w, r)
		case HouseholdServiceAddRoommateProcedure:
			addRoommateHandler.ServeHTTP(w, r)
		case HouseholdServiceDeleteRoommateProcedure:
			deleteRoommateHandler.ServeHTTP(w, r)
		case HouseholdServiceListRoomsProcedure:
			listRoomsHandler.ServeHTTP(w, r)
		case HouseholdServiceAddRoomProcedure:
			addRoomHandler.ServeHTTP(w, r)
		case HouseholdServiceUpdateRoomProcedure:
			updateRoomHandler.ServeHTTP(w, r)
		case HouseholdServiceDeleteRoomProcedure:
			deleteRoomHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedHouseholdServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedHouseholdServiceHandler struct{}

func (UnimplementedHouseholdServiceHandler) ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.ListRoommates is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.AddRoommate is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) DeleteRoommate(context.Context, *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.DeleteRoommate is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) ListRooms(context.Context, *connect.Request[api.ListRoomsRequest]) (*connect.Response[api.ListRoomsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.ListRooms is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) AddRoom(context.Context, *connect.Request[api.AddRoomRequest]) (*connect.Response[api.AddRoomResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.AddRoom is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) UpdateRoom(context.Context, *connect.Request[api.UpdateRoomRequest]) (*connect.Response[api.UpdateRoomResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.UpdateRoom is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) DeleteRoom(context.Context, *connect.Request[api.DeleteRoomRequest]) (*connect.Response[api.DeleteRoomResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.HouseholdService.DeleteRoom is not implemented"))
}
