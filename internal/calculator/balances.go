package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/models"
)

// MemberBalance is what one roommate still owes across payments.
type MemberBalance struct {
	RoommateID  string
	Responsible decimal.Decimal // Total share across all payments
	Paid        decimal.Decimal // Total contributed across all payments
	Outstanding decimal.Decimal // Sum of unpaid remainders, never negative per line
}

// TotalPaid sums what has been contributed toward a payment.
func TotalPaid(contributions []models.Contribution) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range contributions {
		sum = sum.Add(c.Paid)
	}
	return sum
}

// Remaining is the unpaid part of total. The floor is applied to the payment
// as a whole: over-payment by one roommate offsets others, and the result is
// never negative.
func Remaining(total decimal.Decimal, contributions []models.Contribution) decimal.Decimal {
	remaining := total.Sub(TotalPaid(contributions))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// FullyPaid reports whether a roommate has covered their share.
func FullyPaid(c models.Contribution) bool {
	return c.Paid.GreaterThanOrEqual(c.Responsible)
}

// CalculateBalances aggregates every roommate's shares across payments.
// Results follow the order in which roommates first appear.
func CalculateBalances(payments []models.Payment) []MemberBalance {
	index := make(map[string]int)
	var balances []MemberBalance

	for _, p := range payments {
		for _, c := range p.Contributions {
			i, ok := index[c.RoommateID]
			if !ok {
				i = len(balances)
				index[c.RoommateID] = i
				balances = append(balances, MemberBalance{
					RoommateID:  c.RoommateID,
					Responsible: decimal.Zero,
					Paid:        decimal.Zero,
					Outstanding: decimal.Zero,
				})
			}

			b := &balances[i]
			b.Responsible = b.Responsible.Add(c.Responsible)
			b.Paid = b.Paid.Add(c.Paid)
			if owed := c.Responsible.Sub(c.Paid); owed.IsPositive() {
				b.Outstanding = b.Outstanding.Add(owed)
			}
		}
	}

	return balances
}
