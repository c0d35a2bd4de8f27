package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

// FinanceServiceName is the fully-qualified name of the FinanceService service.
const FinanceServiceName = "househub.v1.FinanceService"

// Procedure paths, exposed as constants for use in interceptors and routing.
const (
	FinanceServiceListPaymentsProcedure  = "/househub.v1.FinanceService/ListPayments"
	FinanceServiceCreatePaymentProcedure = "/househub.v1.FinanceService/CreatePayment"
	FinanceServiceDeletePaymentProcedure = "/househub.v1.FinanceService/DeletePayment"
	FinanceServiceContributeProcedure    = "/househub.v1.FinanceService/Contribute"
)

// FinanceServiceClient is a client for the househub.v1.FinanceService service.
type FinanceServiceClient interface {
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
	Contribute(context.Context, *connect.Request[api.ContributeRequest]) (*connect.Response[api.ContributeResponse], error)
}

// NewFinanceServiceClient constructs a client for the househub.v1.FinanceService service.
// baseURL is the server's scheme and host, such as http://localhost:8080.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &financeServiceClient{
		listPayments:  connect.NewClient[api.ListPaymentsRequest, api.ListPaymentsResponse](httpClient, baseURL+FinanceServiceListPaymentsProcedure, opts...),
		createPayment: connect.NewClient[api.CreatePaymentRequest, api.CreatePaymentResponse](httpClient, baseURL+FinanceServiceCreatePaymentProcedure, opts...),
		deletePayment: connect.NewClient[api.DeletePaymentRequest, api.DeletePaymentResponse](httpClient, baseURL+FinanceServiceDeletePaymentProcedure, opts...),
		contribute:    connect.NewClient[api.ContributeRequest, api.ContributeResponse](httpClient, baseURL+FinanceServiceContributeProcedure, opts...),
	}
}

type financeServiceClient struct {
	listPayments  *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
	createPayment *connect.Client[api.CreatePaymentRequest, api.CreatePaymentResponse]
	deletePayment *connect.Client[api.DeletePaymentRequest, api.DeletePaymentResponse]
	contribute    *connect.Client[api.ContributeRequest, api.ContributeResponse]
}

func (c *financeServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *financeServiceClient) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	return c.createPayment.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

func (c *financeServiceClient) Contribute(ctx context.Context, req *connect.Request[api.ContributeRequest]) (*connect.Response[api.ContributeResponse], error) {
	return c.contribute.CallUnary(ctx, req)
}

// FinanceServiceHandler is implemented by the server side of househub.v1.FinanceService.
type FinanceServiceHandler interface {
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
	Contribute(context.Context, *connect.Request[api.ContributeRequest]) (*connect.Response[api.ContributeResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	listPaymentsHandler := connect.NewUnaryHandler(FinanceServiceListPaymentsProcedure, svc.ListPayments, opt)
	createPaymentHandler := connect.NewUnaryHandler(FinanceServiceCreatePaymentProcedure, svc.CreatePayment, opt)
	deletePaymentHandler := connect.NewUnaryHandler(FinanceServiceDeletePaymentProcedure, svc.DeletePayment, opt)
	contributeHandler := connect.NewUnaryHandler(FinanceServiceContributeProcedure, svc.Contribute, opt)
	return "/househub.v1.FinanceService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FinanceServiceListPaymentsProcedure:
			listPaymentsHandler.ServeHTTP(w, r)
		case FinanceServiceCreatePaymentProcedure:
			createPaymentHandler.ServeHTTP(w, r)
		case FinanceServiceDeletePaymentProcedure:
			deletePaymentHandler.ServeHTTP(w, r)
		case FinanceServiceContributeProcedure:
			contributeHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedFinanceServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedFinanceServiceHandler struct{}

func (UnimplementedFinanceServiceHandler) ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.FinanceService.ListPayments is not implemented"))
}

func (UnimplementedFinanceServiceHandler) CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.FinanceService.CreatePayment is not implemented"))
}

func (UnimplementedFinanceServiceHandler) DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.FinanceService.DeletePayment is not implemented"))
}

func (UnimplementedFinanceServiceHandler) Contribute(context.Context, *connect.Request[api.ContributeRequest]) (*connect.Response[api.ContributeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("househub.v1.FinanceService.Contribute is not implemented"))
}
