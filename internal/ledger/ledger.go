// Package ledger records shared payments and the contributions toward them.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/calculator"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/storage"
)

// SplitMode selects how a new payment is divided.
type SplitMode string

const (
	SplitEqual  SplitMode = "equal"
	SplitCustom SplitMode = "custom"
)

// Draft describes a payment to be created.
type Draft struct {
	Reason      string
	Notes       string
	TotalAmount decimal.Decimal
	Mode        SplitMode

	// Participants are the roommates sharing the payment, in display order.
	Participants []string

	// Shares holds per-roommate amounts when Mode is SplitCustom.
	Shares map[string]decimal.Decimal
}

// Ledger stores payments as one collection.
type Ledger struct {
	store storage.Store
	mu    sync.Mutex
}

// New creates a Ledger backed by store.
func New(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Payments returns every payment in creation order.
func (l *Ledger) Payments(ctx context.Context) ([]models.Payment, error) {
	return storage.Load(ctx, l.store, storage.KeyPayments, []models.Payment{})
}

// CreatePayment splits the draft into contributions and stores it.
func (l *Ledger) CreatePayment(ctx context.Context, draft Draft) (models.Payment, error) {
	reason := strings.TrimSpace(draft.Reason)
	if reason == "" {
		return models.Payment{}, fmt.Errorf("%w: reason required", models.ErrInvalidInput)
	}
	if !draft.TotalAmount.IsPositive() {
		return models.Payment{}, fmt.Errorf("%w: total must be positive", models.ErrInvalidInput)
	}

	var contributions []models.Contribution
	var err error
	switch draft.Mode {
	case SplitEqual, "":
		contributions, err = calculator.EqualSplit(draft.TotalAmount, draft.Participants)
	case SplitCustom:
		contributions, err = calculator.CustomSplit(draft.Participants, draft.Shares)
	default:
		err = fmt.Errorf("%w: unknown split mode %q", models.ErrInvalidInput, draft.Mode)
	}
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		ID:            uuid.New().String(),
		Reason:        reason,
		TotalAmount:   draft.TotalAmount,
		Notes:         draft.Notes,
		Contributions: contributions,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	payments, err := l.Payments(ctx)
	if err != nil {
		return models.Payment{}, err
	}
	if err := storage.Save(ctx, l.store, storage.KeyPayments, append(payments, payment)); err != nil {
		return models.Payment{}, err
	}

	slog.Info("Payment created", "payment_id", payment.ID, "total", payment.TotalAmount.StringFixed(2),
		"participants", len(contributions))
	return payment, nil
}

// DeletePayment removes a payment. Unknown IDs are ignored.
func (l *Ledger) DeletePayment(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	payments, err := l.Payments(ctx)
	if err != nil {
		return err
	}

	updated := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.ID != id {
			updated = append(updated, p)
		}
	}
	return storage.Save(ctx, l.store, storage.KeyPayments, updated)
}

// Contribute adds amount to roommateID's paid total on the payment. A
// roommate with no line on the payment leaves it unchanged.
func (l *Ledger) Contribute(ctx context.Context, paymentID, roommateID string, amount decimal.Decimal) (models.Payment, error) {
	if !amount.IsPositive() {
		return models.Payment{}, fmt.Errorf("%w: contribution must be positive", models.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	payments, err := l.Payments(ctx)
	if err != nil {
		return models.Payment{}, err
	}

	idx := -1
	for i := range payments {
		if payments[i].ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Payment{}, fmt.Errorf("%w: payment %s", models.ErrNotFound, paymentID)
	}

	payment := payments[idx]
	contributions := make([]models.Contribution, len(payment.Contributions))
	copy(contributions, payment.Contributions)
	for i := range contributions {
		if contributions[i].RoommateID == roommateID {
			contributions[i].Paid = contributions[i].Paid.Add(amount)
		}
	}
	payment.Contributions = contributions
	payments[idx] = payment

	if err := storage.Save(ctx, l.store, storage.KeyPayments, payments); err != nil {
		return models.Payment{}, err
	}

	slog.Info("Contribution recorded", "payment_id", paymentID, "roommate_id", roommateID,
		"amount", amount.StringFixed(2), "remaining", RemainingBalance(payment).StringFixed(2))
	return payment, nil
}

// Balances totals each roommate's shares across every payment.
func (l *Ledger) Balances(ctx context.Context) ([]calculator.MemberBalance, error) {
	payments, err := l.Payments(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.CalculateBalances(payments), nil
}

// RemainingBalance is what is still owed on a payment, floored at zero.
func RemainingBalance(p models.Payment) decimal.Decimal {
	return calculator.Remaining(p.TotalAmount, p.Contributions)
}
