package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

// ChoreServiceName is the fully-qualified name of the ChoreService service.
const ChoreServiceName = "househub.v1.ChoreService"

// Procedure paths, exposed as constants for use in interceptors and routing.
const (
	ChoreServiceGetWeekProcedure             = "/househub.v1.ChoreService/GetWeek"
	ChoreServiceCompleteAssignmentProcedure  = "/househub.v1.ChoreService/CompleteAssignment"
	ChoreServiceCompleteDutyProcedure        = "/househub.v1.ChoreService/CompleteDuty"
	ChoreServiceAddCustomChoreProcedure      = "/househub.v1.ChoreService/AddCustomChore"
	ChoreServiceCompleteCustomChoreProcedure = "/househub.v1.ChoreService/CompleteCustomChore"
	ChoreServiceDeleteCustomChoreProcedure   = "/househub.v1.ChoreService/DeleteCustomChore"
	ChoreServiceAdvanceWeekProcedure         = "/househub.v1.ChoreService/AdvanceWeek"
	ChoreServiceGetBoardProcedure            = "/househub.v1.ChoreService/GetBoard"
)

// ChoreServiceClient is a client for the househub.v1.ChoreService service.
type ChoreServiceClient interface {
	GetWeek(context.Context, *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error)
	CompleteAssignment(context.Context, *connect.Request[api.CompleteAssignmentRequest]) (*connect.Response[api.CompleteAssignmentResponse], error)
	CompleteDuty(context.Context, *connect.Request[api.CompleteDutyRequest]) (*connect.Response[api.CompleteDutyResponse], error)
	AddCustomChore(context.Context, *connect.Request[api.AddCustomChoreRequest]) (*connect.Response[api.AddCustomChoreResponse], error)
	CompleteCustomChore(context.Context, *connect.Request[api.CompleteCustomChoreRequest]) (*connect.Response[api.CompleteCustomChoreResponse], error)
	DeleteCustomChore(context.Context, *connect.Request[api.DeleteCustomChoreRequest]) (*connect.Response[api.DeleteCustomChoreResponse], error)
	AdvanceWeek(context.Context, *connect.Request[api.AdvanceWeekRequest]) (*connect.Response[api.AdvanceWeekResponse], error)
	GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error)
}

// NewChoreServiceClient constructs a client for the househub.v1.ChoreService service.
// baseURL is the server's scheme and host, such as http://localhost:8080.
func NewChoreServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ChoreServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &choreServiceClient{
		getWeek:             connect.NewClient[api.GetWeekRequest, api.GetWeekResponse](httpClient, baseURL+ChoreServiceGetWeekProcedure, opts...),
		completeAssignment:  connect.NewClient[api.CompleteAssignmentRequest, api.CompleteAssignmentResponse](httpClient, baseURL+ChoreServiceCompleteAssignmentProcedure, opts...),
		completeDuty:        connect.NewClient[api.CompleteDutyRequest, api.CompleteDutyResponse](httpClient, baseURL+ChoreServiceCompleteDutyProcedure, opts...),
		addCustomChore:      connect.NewClient[api.AddCustomChoreRequest, api.AddCustomChoreResponse](httpClient, baseURL+ChoreServiceAddCustomChoreProcedure, opts...),
		completeCustomChore: connect.NewClient[api.CompleteCustomChoreRequest, api.CompleteCustomChoreResponse](httpClient, baseURL+ChoreServiceCompleteCustomChoreProcedure, opts...),
		deleteCustomChore:   connect.NewClient[api.DeleteCustomChoreRequest, api.DeleteCustomChoreResponse](httpClient, baseURL+ChoreServiceDeleteCustomChoreProcedure, opts...),
		advanceWeek:         connect.NewClient[api.AdvanceWeekRequest, api.AdvanceWeekResponse](httpClient, baseURL+ChoreServiceAdvanceWeekProcedure, opts...),
		getBoard:            connect.NewClient[api.GetBoardRequest, api.GetBoardResponse](httpClient, baseURL+ChoreServiceGetBoardProcedure, opts...),
	}
}

type choreServiceClient struct {
	getWeek             *connect.Client[api.GetWeekRequest, api.GetWeekResponse]
	completeAssignment  *connect.Client[api.CompleteAssignmentRequest, api.CompleteAssignmentResponse]
	completeDuty        *connect.Client[api.CompleteDutyRequest, api.CompleteDutyResponse]
	addCustomChore      *connect.Client[api.AddCustomChoreRequest, api.AddCustomChoreResponse]
	completeCustomChore *connect.Client[api.CompleteCustomChoreRequest, api.CompleteCustomChoreResponse]
	deleteCustomChore   *connect.Client[api.DeleteCustomChoreRequest, api.DeleteCustomChoreResponse]
	advanceWeek         *connect.Client[api.AdvanceWeekRequest, api.AdvanceWeekResponse]
	getBoard            *connect.Client[api.GetBoardRequest, api.GetBoardResponse]
}

func (c *choreServiceClient) GetWeek(ctx context.Context, req *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error) {
	return c.getWeek.CallUnary(ctx, req)
}

func (c *choreServiceClient) CompleteAssignment(ctx context.Context, req *connect.Request[api.CompleteAssignmentRequest]) (*connect.Response[api.CompleteAssignmentResponse], error) {
	return c.completeAssignment.CallUnary(ctx, req)
}

func (c *choreServiceClient) CompleteDuty(ctx context.Context, req *connect.Request[api.CompleteDutyRequest]) (*connect.Response[api.CompleteDutyResponse], error) {
	return c.completeDuty.CallUnary(ctx, req)
}

func (c *choreServiceClient) AddCustomChore(ctx context.Context, req *connect.Request[api.AddCustomChoreRequest]) (*connect.Response[api.AddCustomChoreResponse], error) {
	return c.addCustomChore.CallUnary(ctx, req)
}

func (c *choreServiceClient) CompleteCustomChore(ctx context.Context, req *connect.Request[api.CompleteCustomChoreRequest]) (*connect.Response[api.CompleteCustomChoreResponse], error) {
	return c.completeCustomChore.CallUnary(ctx, req)
}

func (c *choreServiceClient) DeleteCustomChore(ctx context.Context, req *connect.Request[api.DeleteCustomChoreRequest]) (*connect.Response[api.DeleteCustomChoreResponse], error) {
	return c.deleteCustomChore.CallUnary(ctx, req)
}

func (c *choreServiceClient) AdvanceWeek(ctx context.Context, req *connect.Request[api.AdvanceWeekRequest]) (*connect.Response[api.AdvanceWeekResponse], error) {
	return c.advanceWeek.CallUnary(ctx, req)
}

func (c *choreServiceClient) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	return c.getBoard.CallUnary(ctx, req)
}

// ChoreServiceHandler is implemented by the server side of househub.v1.ChoreService.
type ChoreServiceHandler interface {
	GetWeek(context.Context, *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error)
	CompleteAssignment(context.Context, *connect.Request[api.CompleteAssignmentRequest]) (*connect.Response[api.CompleteAssignmentResponse], error)
	CompleteDuty(context.Context, *connect.Request[api.CompleteDutyRequest]) (*connect.Response[api.CompleteDutyResponse], error)
	AddCustomChore(context.Context, *connect.Request[api.AddCustomChoreRequest]) (*connect.Response[api.AddCustomChoreResponse], error)
	CompleteCustomChore(context.Context, *connect.Request[api.CompleteCustomChoreRequest]) (*connect.Response[api.CompleteCustomChoreResponse], error)
	DeleteCustomChore(context.Context, *connect.Request[api.DeleteCustomChoreRequest]) (*connect.Response[api.DeleteCustomChoreResponse], error)
	AdvanceWeek(context.Context, *connect.Request[api.AdvanceWeekRequest]) (*connect.Response[api.AdvanceWeekResponse], error)
	GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error)
}

// NewChoreServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewChoreServiceHandler(svc ChoreServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	getWeekHandler := connect.NewUnaryHandler(ChoreServiceGetWeekProcedure, svc.GetWeek, opt)
	completeAssignmentHandler := connect.NewUnaryHandler(ChoreServiceCompleteAssignmentProcedure, svc.CompleteAssignment, opt)
	completeDutyHandler := connect.NewUnaryHandler(ChoreServiceCompleteDutyProcedure, svc.CompleteDuty, opt)
	addCustomChoreHandler := connect.NewUnaryHandler(ChoreServiceAddCustomChoreProcedure, svc.AddCustomChore, opt)
	completeCustomChoreHandler := connect.NewUnaryHandler(ChoreServiceCompleteCustomChoreProcedure, svc.CompleteCustomChore, opt)
	deleteCustomChoreHandler := connect.NewUnaryHandler(ChoreServiceDeleteCustomChoreProcedure, svc.DeleteCustomChore, opt)
	advanceWeekHandler := connect.NewUnaryHandler(ChoreServiceAdvanceWeekProcedure, svc.AdvanceWeek, opt)
	getBoardHandler := connect.NewUnaryHandler(ChoreServiceGetBoardProcedure, svc.GetBoard, opt)
	return "/househub.v1.ChoreService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ChoreServiceGetWeekProcedure:
			getWeekHandler.ServeHTTP(w, r)
		case ChoreServiceCompleteAssignmentProcedure:
			completeAssignmentHandler.ServeHTTP(w, r)
		case ChoreServiceCompleteDutyProcedure:
			completeDutyHandler.ServeHTTP(w, r)
		case ChoreServiceAddCustomChoreProcedure:
			addCustomChoreHandler.ServeHTTP(w, r)
		case ChoreServiceCompleteCustomChoreProcedure:
			completeCustomChoreHandler.ServeHTTP(w, r)
		case ChoreServiceDeleteCustomChoreProcedure:
			deleteCustomChoreHandler.ServeHTTP(w, r)
		case ChoreServiceAdvanceWeekProcedure:
			advanceWeekHandler.ServeHTTP(w, r)
		case ChoreServiceGetBoardProcedure:
			getBoardHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedChoreServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedChoreServiceHandler struct{}

func (UnimplementedChoreServiceHandler) GetWeek(context.Context, *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.GetWeek is not implemented"))
}

func (UnimplementedChoreServiceHandler) CompleteAssignment(context.Context, *connect.Request[api.CompleteAssignmentRequest]) (*connect.Response[api.CompleteAssignmentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.CompleteAssignment is not implemented"))
}

func (UnimplementedChoreServiceHandler) CompleteDuty(context.Context, *connect.Request[api.CompleteDutyRequest]) (*connect.Response[api.CompleteDutyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.CompleteDuty is not implemented"))
}

func (UnimplementedChoreServiceHandler) AddCustomChore(context.Context, *connect.Request[api.AddCustomChoreRequest]) (*connect.Response[api.AddCustomChoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.AddCustomChore is not implemented"))
}

func (UnimplementedChoreServiceHandler) CompleteCustomChore(context.Context, *connect.Request[api.CompleteCustomChoreRequest]) (*connect.Response[api.CompleteCustomChoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.CompleteCustomChore is not implemented"))
}

func (UnimplementedChoreServiceHandler) DeleteCustomChore(context.Context, *connect.Request[api.DeleteCustomChoreRequest]) (*connect.Response[api.DeleteCustomChoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.DeleteCustomChore is not implemented"))
}

func (UnimplementedChoreServiceHandler) AdvanceWeek(context.Context, *connect.Request[api.AdvanceWeekRequest]) (*connect.Response[api.AdvanceWeekResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.AdvanceWeek is not implemented"))
}

func (UnimplementedChoreServiceHandler) GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.ChoreService.GetBoard is not implemented"))
}
