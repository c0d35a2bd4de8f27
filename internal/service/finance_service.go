package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/ledger"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/pkg/api"
	"github.com/mmynk/househub/pkg/api/apiconnect"
)

// FinanceService implements the Connect FinanceService
type FinanceService struct {
	apiconnect.UnimplementedFinanceServiceHandler
	ledger   *ledger.Ledger
	registry *household.Registry
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(l *ledger.Ledger, registry *household.Registry) *FinanceService {
	return &FinanceService{ledger: l, registry: registry}
}

// ListPayments returns every payment and each roommate's running balance.
func (s *FinanceService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	payments, err := s.ledger.Payments(ctx)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}
	balances, err := s.ledger.Balances(ctx)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}
	dir, err := s.registry.Directory(ctx)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}

	out := make([]api.Payment, len(payments))
	for i, p := range payments {
		out[i] = paymentToAPI(p, dir)
	}
	return connect.NewResponse(&api.ListPaymentsResponse{
		Payments: out,
		Balances: balancesToAPI(balances, dir),
	}), nil
}

// CreatePayment records a payment split across roommates.
func (s *FinanceService) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	slog.Info("CreatePayment request received",
		"reason", req.Msg.Reason,
		"total", req.Msg.TotalAmount,
		"split_mode", req.Msg.SplitMode,
		"participants", len(req.Msg.RoommateIDs),
	)

	total, err := parseAmount("totalAmount", req.Msg.TotalAmount)
	if err != nil {
		return nil, toConnectError("CreatePayment", err)
	}
	shares := make(map[string]decimal.Decimal, len(req.Msg.Shares))
	for id, raw := range req.Msg.Shares {
		amount, err := parseAmount("share for "+id, raw)
		if err != nil {
			return nil, toConnectError("CreatePayment", err)
		}
		shares[id] = amount
	}

	payment, err := s.ledger.CreatePayment(ctx, ledger.Draft{
		Reason:       req.Msg.Reason,
		Notes:        req.Msg.Notes,
		TotalAmount:  total,
		Mode:         ledger.SplitMode(req.Msg.SplitMode),
		Participants: req.Msg.RoommateIDs,
		Shares:       shares,
	})
	if err != nil {
		return nil, toConnectError("CreatePayment", err)
	}

	dir, err := s.registry.Directory(ctx)
	if err != nil {
		return nil, toConnectError("CreatePayment", err)
	}
	return connect.NewResponse(&api.CreatePaymentResponse{Payment: paymentToAPI(payment, dir)}), nil
}

// DeletePayment removes a payment.
func (s *FinanceService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.ID)

	if err := s.ledger.DeletePayment(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeletePayment", err)
	}
	return connect.NewResponse(&api.DeletePaymentResponse{}), nil
}

// Contribute records money a roommate put toward a payment.
func (s *FinanceService) Contribute(ctx context.Context, req *connect.Request[api.ContributeRequest]) (*connect.Response[api.ContributeResponse], error) {
	slog.Info("Contribute request received",
		"payment_id", req.Msg.PaymentID,
		"roommate_id", req.Msg.RoommateID,
		"amount", req.Msg.Amount,
	)

	amount, err := parseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError("Contribute", err)
	}
	payment, err := s.ledger.Contribute(ctx, req.Msg.PaymentID, req.Msg.RoommateID, amount)
	if err != nil {
		return nil, toConnectError("Contribute", err)
	}

	dir, err := s.registry.Directory(ctx)
	if err != nil {
		return nil, toConnectError("Contribute", err)
	}
	return connect.NewResponse(&api.ContributeResponse{Payment: paymentToAPI(payment, dir)}), nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q is not a number", models.ErrInvalidInput, field, raw)
	}
	return amount, nil
}
