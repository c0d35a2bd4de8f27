package models

import "github.com/shopspring/decimal"

// Payment represents a shared expense and who is covering it.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// Reason is a short description (e.g., "Internet", "Groceries").
	Reason string `json:"reason"`

	// TotalAmount is the full amount of the expense.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// Notes is free text.
	Notes string `json:"notes"`

	// Contributions holds one line per participating roommate, in order.
	Contributions []Contribution `json:"contributions"`
}

// Contribution tracks one roommate's share of a payment.
type Contribution struct {
	// RoommateID references the roommate owing this share.
	RoommateID string `json:"roommateId"`

	// Responsible is the amount this roommate owes.
	Responsible decimal.Decimal `json:"responsible"`

	// Paid is the cumulative amount this roommate has contributed.
	// It may exceed Responsible; over-payment is not tracked as credit.
	Paid decimal.Decimal `json:"paid"`
}
