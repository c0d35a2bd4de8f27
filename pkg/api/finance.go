package api

const (
	SplitEqual  = "equal"
	SplitCustom = "custom"
)

type Contribution struct {
	RoommateID   string `json:"roommateId"`
	RoommateName string `json:"roommateName"`
	Responsible  string `json:"responsible"`
	Paid         string `json:"paid"`
	FullyPaid    bool   `json:"fullyPaid"`
}

type Payment struct {
	ID            string         `json:"id"`
	Reason        string         `json:"reason"`
	TotalAmount   string         `json:"totalAmount"`
	Notes         string         `json:"notes"`
	Contributions []Contribution `json:"contributions"`
	Remaining     string         `json:"remaining"`
}

// Balance is one roommate's position across all payments.
type Balance struct {
	RoommateID   string `json:"roommateId"`
	RoommateName string `json:"roommateName"`
	Responsible  string `json:"responsible"`
	Paid         string `json:"paid"`
	Outstanding  string `json:"outstanding"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []Payment `json:"payments"`
	Balances []Balance `json:"balances"`
}

type CreatePaymentRequest struct {
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
	TotalAmount string `json:"totalAmount"`

	// SplitMode is SplitEqual (default) or SplitCustom.
	SplitMode   string   `json:"splitMode"`
	RoommateIDs []string `json:"roommateIds"`

	// Shares maps roommate ID to amount for custom splits.
	Shares map[string]string `json:"shares,omitempty"`
}

type CreatePaymentResponse struct {
	Payment Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	ID string `json:"id"`
}

type DeletePaymentResponse struct{}

type ContributeRequest struct {
	PaymentID  string `json:"paymentId"`
	RoommateID string `json:"roommateId"`
	Amount     string `json:"amount"`
}

type ContributeResponse struct {
	Payment Payment `json:"payment"`
}
