package model

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentCash              PaymentMethod = "cash"
	PaymentBankTransfer      PaymentMethod = "bank_transfer"
	PaymentElectronicGateway PaymentMethod = "electronic_gateway"
	PaymentCreditCard        PaymentMethod = "credit_card"
	PaymentCustomerCredit    PaymentMethod = "customer_credit"
)

type PaymentType string

const (
	PaymentTypeSingle PaymentType = "single"
	PaymentTypeMixed  PaymentType = "mixed"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// ValidateInput is the raw operator request, before any normalization.
type ValidateInput struct {
	OrderID           int64
	OperatorID        int64
	PaymentMethod     string
	Decision          string
	PaymentType       string
	TransferredAmount string
	CashAmount        string
	DeclaredAmount    string
	EvidenceRef       string
	CashEvidenceRef   string
	PaymentReference  string
	Provider          string
	CreditApproved    bool
	Notes             string
}

// Split is the outcome of reconciling a bank transfer declaration.
type Split struct {
	Type        PaymentType
	Transferred decimal.Decimal
	Cash        decimal.Decimal
	Money       Money
}

// DecisionContext carries everything the state machine and the ledger need
// for one validation attempt. It is built once and never mutated afterwards.
type DecisionContext struct {
	Order             Order
	OperatorID        int64
	Decision          Decision
	Method            PaymentMethod
	PaymentType       PaymentType
	Provider          string
	DeclaredAmount    decimal.NullDecimal
	TransferredAmount decimal.NullDecimal
	CashAmount        decimal.NullDecimal
	Split             *Split
	Credit            CreditAssessment
	EvidenceRef       string
	CashEvidenceRef   string
	PaymentReference  string
	CreditApproved    bool
	Notes             string
}
