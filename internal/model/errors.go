package model

import "errors"

var (
	ErrInvalidDecision = errors.New("invalid decision")
	ErrInvalidAmount   = errors.New("invalid amount")

	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotEligible = errors.New("order not eligible for validation")

	ErrMixedPaymentMismatch       = errors.New("transferred plus cash must equal the order total")
	ErrMixedPaymentInvalidAmounts = errors.New("mixed payment requires both transferred and cash amounts above zero")
	ErrMissingEvidence            = errors.New("electronic gateway payment requires a proof attachment")

	ErrNoRecords          = errors.New("no records")
	ErrEntryNotFound      = errors.New("collection entry not found")
	ErrEntryStateConflict = errors.New("collection entry is not in the required status")
	ErrInvalidChannel     = errors.New("invalid collection channel")
	ErrInvalidCustomer    = errors.New("customer name is required")
)
