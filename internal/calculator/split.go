// Package calculator holds the settlement arithmetic for shared payments.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/models"
)

// centPlaces is the precision every share is rounded to.
const centPlaces = 2

// EqualSplit divides total evenly among roommates, one contribution each in
// the given order. Each share is rounded to the cent, so the shares may not
// add up to total exactly.
func EqualSplit(total decimal.Decimal, roommateIDs []string) ([]models.Contribution, error) {
	if len(roommateIDs) == 0 {
		return nil, fmt.Errorf("%w: must have at least one participant", models.ErrInvalidInput)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: total must be positive", models.ErrInvalidInput)
	}

	share := total.DivRound(decimal.NewFromInt(int64(len(roommateIDs))), centPlaces)
	contributions := make([]models.Contribution, len(roommateIDs))
	for i, id := range roommateIDs {
		contributions[i] = models.Contribution{
			RoommateID:  id,
			Responsible: share,
			Paid:        decimal.Zero,
		}
	}
	return contributions, nil
}

// CustomSplit builds contributions from explicit amounts, one per roommate in
// the given order. Roommates without an amount owe zero.
func CustomSplit(roommateIDs []string, amounts map[string]decimal.Decimal) ([]models.Contribution, error) {
	if len(roommateIDs) == 0 {
		return nil, fmt.Errorf("%w: must have at least one participant", models.ErrInvalidInput)
	}

	contributions := make([]models.Contribution, len(roommateIDs))
	for i, id := range roommateIDs {
		amount := amounts[id]
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: negative share for %s", models.ErrInvalidInput, id)
		}
		contributions[i] = models.Contribution{
			RoommateID:  id,
			Responsible: amount.Round(centPlaces),
			Paid:        decimal.Zero,
		}
	}
	return contributions, nil
}
