package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationRecord is one immutable row of the validation ledger.
type ValidationRecord struct {
	ID                int64               `json:"id"`
	OrderID           int64               `json:"orderId"`
	PaymentMethod     PaymentMethod       `json:"paymentMethod"`
	PaymentType       PaymentType         `json:"paymentType"`
	Decision          Decision            `json:"decision"`
	FromStatus        OrderStatus         `json:"fromStatus"`
	ToStatus          OrderStatus         `json:"toStatus"`
	TotalAmount       decimal.Decimal     `json:"totalAmount"`
	DeclaredAmount    decimal.NullDecimal `json:"declaredAmount"`
	TransferredAmount decimal.NullDecimal `json:"transferredAmount"`
	CashAmount        decimal.NullDecimal `json:"cashAmount"`
	EvidenceRef       string              `json:"evidenceRef,omitempty"`
	CashEvidenceRef   string              `json:"cashEvidenceRef,omitempty"`
	PaymentReference  string              `json:"paymentReference,omitempty"`
	Provider          string              `json:"provider,omitempty"`
	CreditLimit       decimal.NullDecimal `json:"creditLimit"`
	CreditBalance     decimal.NullDecimal `json:"creditBalance"`
	CreditAvailable   decimal.NullDecimal `json:"creditAvailable"`
	CreditSource      string              `json:"creditSource,omitempty"`
	CreditApproved    bool                `json:"creditApproved"`
	Notes             string              `json:"notes,omitempty"`
	ValidatedBy       int64               `json:"validatedBy"`
	ValidatedAt       time.Time           `json:"validatedAt"`
}

// AppliedValidation is everything one validation transaction writes.
type AppliedValidation struct {
	OrderID    int64
	Transition Transition
	Method     PaymentMethod
	Provider   string
	Notes      string
	Record     ValidationRecord

	// CreditBooked is the charge the order carried when it was read; the order update is
	// guarded by it as well as by the status. CreditCharge is a charge to book now and
	// CreditRelease a booked one to reverse now. Both are nil when the order already
	// carries the charge this validation asks for.
	CreditBooked  *CreditCharge
	CreditCharge  *CreditCharge
	CreditRelease *CreditCharge
}

type CreditCharge struct {
	AccountID int64
	Amount    decimal.Decimal
}

// SameCharge reports whether a and b book the same amount on the same account.
func SameCharge(a, b *CreditCharge) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.AccountID == b.AccountID && a.Amount.Equal(b.Amount)
}
