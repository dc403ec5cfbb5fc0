package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditStatus string

const (
	CreditActive   CreditStatus = "active"
	CreditInactive CreditStatus = "inactive"
)

type CreditAccount struct {
	ID             int64           `json:"id"`
	CustomerName   string          `json:"customerName"`
	NormalizedName string          `json:"-"`
	TaxID          string          `json:"taxId"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         CreditStatus    `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type CreditAccountInput struct {
	CustomerName   string          `json:"customerName"`
	TaxID          string          `json:"taxId"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         CreditStatus    `json:"status"`
	Notes          string          `json:"notes"`
}

// LedgerBalance is an outstanding balance as reported by the external accounting system.
type LedgerBalance struct {
	Balance decimal.Decimal `json:"balance"`
	Source  string          `json:"source"`
	AsOf    time.Time       `json:"asOf"`
}

type AdvisoryCode string

const (
	AdvisoryCreditNotConfigured AdvisoryCode = "CREDIT_NOT_CONFIGURED"
	AdvisoryCreditInactive      AdvisoryCode = "CREDIT_INACTIVE"
	AdvisoryInsufficientCredit  AdvisoryCode = "INSUFFICIENT_CREDIT"
	AdvisoryLedgerUnavailable   AdvisoryCode = "LEDGER_UNAVAILABLE"
)

// Advisory is a non-blocking warning attached to a decision.
type Advisory struct {
	Code AdvisoryCode      `json:"code"`
	Data map[string]string `json:"data,omitempty"`
}

// CreditAssessment is the credit evaluator's result, folded into the decision.
type CreditAssessment struct {
	AccountID  int64
	Active     bool
	Limit      decimal.NullDecimal
	Balance    decimal.NullDecimal
	Available  decimal.NullDecimal
	Source     string
	Advisories []Advisory
}

type WalletStats struct {
	PendingValidations int64           `json:"pendingValidations"`
	TotalCredit        decimal.Decimal `json:"totalCredit"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TodayValidations   int64           `json:"todayValidations"`
	ExhaustedCredit    int64           `json:"exhaustedCredit"`
}
