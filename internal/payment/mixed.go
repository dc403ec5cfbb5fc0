package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// TransferDeclaration is what the operator declared for a bank transfer approval.
type TransferDeclaration struct {
	Total       decimal.Decimal
	Transferred decimal.NullDecimal
	Cash        decimal.NullDecimal
	// Mixed is the explicit payment type flag.
	Mixed bool
}

// ReconcileTransfer decides between a full transfer and a transfer + cash split.
//
//	mixed    := flag || (t>0 && c>0) || (t>0 && total-t>0)
//	mixed    -> t>0, c>0 and t+c == total exactly, else rejected
//	not mixed -> full transfer, paid = total
//
// Undeclared cash is implied as total - transferred.
func ReconcileTransfer(d TransferDeclaration) (model.Split, error) {
	t := decimal.Zero
	if d.Transferred.Valid {
		t = d.Transferred.Decimal
	}

	c := d.Total.Sub(t)
	if d.Cash.Valid {
		c = d.Cash.Decimal
	}

	mixed := d.Mixed ||
		(t.IsPositive() && c.IsPositive()) ||
		(t.IsPositive() && d.Total.Sub(t).IsPositive())

	if !mixed {
		if t.GreaterThan(d.Total) {
			return model.Split{}, fmt.Errorf("%w: transferred %s exceeds total %s", model.ErrInvalidAmount, t, d.Total)
		}
		if !t.IsPositive() && d.Cash.Valid && d.Cash.Decimal.IsPositive() {
			return model.Split{}, fmt.Errorf("%w: cash %s declared without a transfer", model.ErrMixedPaymentInvalidAmounts, c)
		}
		return model.Split{
			Type:        model.PaymentTypeSingle,
			Transferred: d.Total,
			Cash:        decimal.Zero,
			Money: model.Money{
				RequiresPayment: false,
				PaidAmount:      d.Total,
				PaymentAmount:   decimal.Zero,
			},
		}, nil
	}

	if !t.IsPositive() || !c.IsPositive() {
		return model.Split{}, fmt.Errorf("%w: transferred %s, cash %s", model.ErrMixedPaymentInvalidAmounts, t, c)
	}
	if !t.Add(c).Equal(d.Total) {
		return model.Split{}, fmt.Errorf("%w: %s + %s != %s", model.ErrMixedPaymentMismatch, t, c, d.Total)
	}

	return model.Split{
		Type:        model.PaymentTypeMixed,
		Transferred: t,
		Cash:        c,
		Money: model.Money{
			RequiresPayment: true,
			PaidAmount:      t,
			PaymentAmount:   c,
		},
	}, nil
}
