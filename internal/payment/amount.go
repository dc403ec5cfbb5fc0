package payment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// ParseAmount parses an optional operator-entered amount. An empty string is
// "not declared"; anything else must be a non-negative number.
func ParseAmount(raw string) (decimal.NullDecimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s is negative", model.ErrInvalidAmount, d)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
