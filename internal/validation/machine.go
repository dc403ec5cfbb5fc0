// Package validation holds the order validation state machine: which orders may
// be validated, where they go next, and what the money fields become.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Gophercash/internal/model"
)

var eligible = map[model.OrderStatus]bool{
	model.OrderStatusPendingWalletReview: true,
	model.OrderStatusInLogistics:         true,
	model.OrderStatusReadyForDelivery:    true,
}

// Eligible reports whether an order in status s can be (re)validated.
// in_logistics and ready_for_delivery are accepted so a wrong mixed payment can be corrected.
func Eligible(s model.OrderStatus) bool {
	return eligible[s]
}

// Next computes the transition for a decision context. It performs no I/O.
func Next(dc model.DecisionContext) (model.Transition, error) {
	o := dc.Order
	if !Eligible(o.Status) {
		return model.Transition{}, fmt.Errorf("%w: order %d is %s", model.ErrOrderNotEligible, o.ID, o.Status)
	}

	current := model.Money{
		RequiresPayment: o.RequiresPayment,
		PaymentAmount:   o.PaymentAmount,
		PaidAmount:      o.PaidAmount,
	}

	switch dc.Decision {
	case model.DecisionRejected:
		return model.Transition{
			FromStatus:       o.Status,
			ToStatus:         o.Status,
			ValidationStatus: model.ValidationRejected,
			Money:            current,
		}, nil
	case model.DecisionApproved:
	default:
		return model.Transition{}, fmt.Errorf("%w: %q", model.ErrInvalidDecision, dc.Decision)
	}

	money, err := Settle(dc)
	if err != nil {
		return model.Transition{}, err
	}

	return model.Transition{
		FromStatus:       o.Status,
		ToStatus:         nextStatus(o),
		ValidationStatus: model.ValidationApproved,
		Money:            money,
	}, nil
}

func nextStatus(o model.Order) model.OrderStatus {
	if o.IsService {
		return model.OrderStatusDelivered
	}
	// logistics is never pushed backward by a late correction
	if o.Status.AtOrPast(model.OrderStatusReadyForDelivery) {
		return o.Status
	}
	return model.OrderStatusInLogistics
}

// Settle derives the money fields of an approved decision from the order total
// and the declaration alone, so a re-validation replaces the previous values.
func Settle(dc model.DecisionContext) (model.Money, error) {
	total := dc.Order.TotalAmount

	switch dc.Method {
	case model.PaymentBankTransfer:
		if dc.Split == nil {
			return model.Money{}, fmt.Errorf("%w: bank transfer without reconciled split", model.ErrInvalidAmount)
		}
		return dc.Split.Money, nil

	case model.PaymentElectronicGateway, model.PaymentCreditCard:
		paid := total
		if dc.DeclaredAmount.Valid {
			paid = dc.DeclaredAmount.Decimal
		}
		if paid.GreaterThan(total) {
			return model.Money{}, fmt.Errorf("%w: declared %s exceeds total %s", model.ErrInvalidAmount, paid, total)
		}
		owed := total.Sub(paid)
		return model.Money{
			RequiresPayment: owed.IsPositive(),
			PaymentAmount:   owed,
			PaidAmount:      paid,
		}, nil

	case model.PaymentCustomerCredit:
		return model.Money{
			RequiresPayment: false,
			PaymentAmount:   decimal.Zero,
			PaidAmount:      decimal.Zero,
		}, nil

	default:
		return model.Money{
			RequiresPayment: true,
			PaymentAmount:   total,
			PaidAmount:      decimal.Zero,
		}, nil
	}
}
