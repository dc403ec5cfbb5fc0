// Package settlement matches physically collected cash against orders.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// DefaultTolerance is the largest cash-handling discrepancy settled without review.
var DefaultTolerance = decimal.NewFromInt(100)

// Evaluate compares the open collection amount with what the order still expects:
//
//	expected = total - paid - already settled
//
// Channels are not considered; the aggregation is channel-agnostic.
func Evaluate(c model.SettlementCandidate, tolerance decimal.Decimal) model.SettlementOutcome {
	expected := c.TotalAmount.Sub(c.PaidAmount).Sub(c.SettledAmount)
	diff := expected.Sub(c.OpenAmount)

	return model.SettlementOutcome{
		Candidate:  c,
		Expected:   expected,
		Difference: diff,
		Settled:    diff.Abs().LessThanOrEqual(tolerance),
	}
}
