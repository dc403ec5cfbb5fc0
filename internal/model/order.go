package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingBilling      OrderStatus = "pending_billing"
	OrderStatusPendingWalletReview OrderStatus = "pending_wallet_review"
	OrderStatusInLogistics         OrderStatus = "in_logistics"
	OrderStatusInPackaging         OrderStatus = "in_packaging"
	OrderStatusReadyForDelivery    OrderStatus = "ready_for_delivery"
	OrderStatusDelivered           OrderStatus = "delivered"
	OrderStatusSpecialHandling     OrderStatus = "special_handling"
	OrderStatusCancelled           OrderStatus = "cancelled"
)

// pipelineRank orders the statuses an order walks through on the happy path.
// Statuses outside the pipeline have no rank.
var pipelineRank = map[OrderStatus]int{
	OrderStatusPendingBilling:      1,
	OrderStatusPendingWalletReview: 2,
	OrderStatusInLogistics:         3,
	OrderStatusInPackaging:         4,
	OrderStatusReadyForDelivery:    5,
	OrderStatusDelivered:           6,
}

// AtOrPast reports whether s is at or beyond other in the fulfillment pipeline.
func (s OrderStatus) AtOrPast(other OrderStatus) bool {
	a, ok := pipelineRank[s]
	if !ok {
		return false
	}
	return a >= pipelineRank[other]
}

type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationApproved ValidationStatus = "approved"
	ValidationRejected ValidationStatus = "rejected"
)

type Order struct {
	ID                 int64            `json:"id"`
	Number             string           `json:"orderNumber"`
	CustomerName       string           `json:"customerName"`
	CustomerTaxID      string           `json:"customerTaxId"`
	Status             OrderStatus      `json:"status"`
	PaymentMethod      string           `json:"paymentMethod"`
	ElectronicProvider string           `json:"electronicProvider,omitempty"`
	RequiresPayment    bool             `json:"requiresPayment"`
	PaymentAmount      decimal.Decimal  `json:"paymentAmount"`
	PaidAmount         decimal.Decimal  `json:"paidAmount"`
	TotalAmount        decimal.Decimal  `json:"totalAmount"`
	IsService          bool             `json:"isService"`
	ValidationStatus   ValidationStatus `json:"validationStatus"`
	ValidationNotes    string           `json:"validationNotes,omitempty"`
	UpdatedAt          time.Time        `json:"updatedAt"`

	// CreditCharge is the credit charge booked by the latest approval, nil when none is.
	CreditCharge *CreditCharge `json:"-"`
}

// Money holds the three amount fields an approved decision writes.
type Money struct {
	RequiresPayment bool
	PaymentAmount   decimal.Decimal
	PaidAmount      decimal.Decimal
}

// Transition is the result of applying a decision to an order.
type Transition struct {
	FromStatus       OrderStatus
	ToStatus         OrderStatus
	ValidationStatus ValidationStatus
	Money            Money
}

// OrderSnapshot is what the validate operation returns to the caller.
type OrderSnapshot struct {
	Order      Order      `json:"order"`
	Advisories []Advisory `json:"advisories"`
}
