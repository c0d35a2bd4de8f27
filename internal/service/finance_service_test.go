package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/pkg/api"
)

func TestPaymentLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	roommates := addRoommates(t, c, "Alice", "Bob", "Charlie")
	ids := []string{roommates[0].ID, roommates[1].ID, roommates[2].ID}

	created, err := c.finance.CreatePayment(ctx, connect.NewRequest(&api.CreatePaymentRequest{
		Reason:      "Internet",
		TotalAmount: "90",
		SplitMode:   api.SplitEqual,
		RoommateIDs: ids,
	}))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	payment := created.Msg.Payment
	if payment.TotalAmount != "90.00" || payment.Remaining != "90.00" {
		t.Errorf("unexpected totals %s / %s", payment.TotalAmount, payment.Remaining)
	}
	for _, contrib := range payment.Contributions {
		if contrib.Responsible != "30.00" || contrib.Paid != "0.00" || contrib.FullyPaid {
			t.Errorf("unexpected contribution %+v", contrib)
		}
	}
	if payment.Contributions[0].RoommateName != "Alice" {
		t.Errorf("expected Alice first, got %s", payment.Contributions[0].RoommateName)
	}

	remaining := []string{"60.00", "30.00", "0.00"}
	for i, id := range ids {
		resp, err := c.finance.Contribute(ctx, connect.NewRequest(&api.ContributeRequest{
			PaymentID:  payment.ID,
			RoommateID: id,
			Amount:     "30",
		}))
		if err != nil {
			t.Fatalf("Contribute failed: %v", err)
		}
		if resp.Msg.Payment.Remaining != remaining[i] {
			t.Errorf("after contribution %d remaining = %s, want %s", i+1, resp.Msg.Payment.Remaining, remaining[i])
		}
		if !resp.Msg.Payment.Contributions[i].FullyPaid {
			t.Errorf("expected contribution %d fully paid", i+1)
		}
	}

	over, err := c.finance.Contribute(ctx, connect.NewRequest(&api.ContributeRequest{
		PaymentID:  payment.ID,
		RoommateID: ids[0],
		Amount:     "50",
	}))
	if err != nil {
		t.Fatalf("Contribute failed: %v", err)
	}
	if over.Msg.Payment.Remaining != "0.00" || over.Msg.Payment.Contributions[0].Paid != "80.00" {
		t.Errorf("unexpected over-payment result %+v", over.Msg.Payment)
	}

	list, err := c.finance.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{}))
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(list.Msg.Payments) != 1 || len(list.Msg.Balances) != 3 {
		t.Fatalf("unexpected listing %+v", list.Msg)
	}
	if list.Msg.Balances[0].Outstanding != "0.00" {
		t.Errorf("expected nothing outstanding for Alice, got %s", list.Msg.Balances[0].Outstanding)
	}

	if _, err := c.finance.DeletePayment(ctx, connect.NewRequest(&api.DeletePaymentRequest{ID: payment.ID})); err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}
	list, err = c.finance.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{}))
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(list.Msg.Payments) != 0 {
		t.Errorf("expected no payments, got %d", len(list.Msg.Payments))
	}
}

func TestCreatePayment_CustomSplit(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.finance.CreatePayment(context.Background(), connect.NewRequest(&api.CreatePaymentRequest{
		Reason:      "Groceries",
		TotalAmount: "45.5",
		SplitMode:   api.SplitCustom,
		RoommateIDs: []string{"a", "b"},
		Shares:      map[string]string{"a": "30.5", "b": "15"},
	}))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	got := resp.Msg.Payment.Contributions
	if got[0].Responsible != "30.50" || got[1].Responsible != "15.00" {
		t.Errorf("unexpected shares %+v", got)
	}
	if got[0].RoommateName != "Unknown" {
		t.Errorf("expected unresolved roommate to read Unknown, got %s", got[0].RoommateName)
	}
}

func TestFinanceErrors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.CreatePaymentRequest
	}{
		{"non-numeric total", &api.CreatePaymentRequest{Reason: "Rent", TotalAmount: "lots", RoommateIDs: []string{"a"}}},
		{"zero total", &api.CreatePaymentRequest{Reason: "Rent", TotalAmount: "0", RoommateIDs: []string{"a"}}},
		{"missing reason", &api.CreatePaymentRequest{TotalAmount: "10", RoommateIDs: []string{"a"}}},
		{"no participants", &api.CreatePaymentRequest{Reason: "Rent", TotalAmount: "10"}},
		{"bad share", &api.CreatePaymentRequest{Reason: "Rent", TotalAmount: "10", SplitMode: api.SplitCustom,
			RoommateIDs: []string{"a"}, Shares: map[string]string{"a": "ten"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.finance.CreatePayment(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	_, err := c.finance.Contribute(ctx, connect.NewRequest(&api.ContributeRequest{PaymentID: "ghost", RoommateID: "a", Amount: "5"}))
	assertCode(t, err, connect.CodeNotFound)
}
