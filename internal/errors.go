package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DrGermanius/Gophercash/internal/model"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request body")
)

const (
	CodeInvalidDecision            = "INVALID_DECISION"
	CodeInvalidAmount              = "INVALID_AMOUNT"
	CodeOrderNotEligible           = "ORDER_NOT_ELIGIBLE"
	CodeMixedPaymentMismatch       = "MIXED_PAYMENT_MISMATCH"
	CodeMixedPaymentInvalidAmounts = "MIXED_PAYMENT_INVALID_AMOUNTS"
	CodeMissingEvidence            = "MISSING_EVIDENCE"
	CodeEntryNotFound              = "ENTRY_NOT_FOUND"
	CodeEntryStateConflict         = "ENTRY_STATE_CONFLICT"
	CodeInvalidChannel             = "INVALID_CHANNEL"
	CodeInvalidRequest             = "INVALID_REQUEST"
	CodeUnauthorized               = "UNAUTHORIZED"
	CodeInternal                   = "INTERNAL"
)

// errorCode maps a service error to its stable code and http status.
// Order checks come first: a missing order wraps both ErrOrderNotEligible and ErrOrderNotFound.
func errorCode(err error) (string, int) {
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		return CodeOrderNotEligible, fiber.StatusNotFound
	case errors.Is(err, model.ErrOrderNotEligible):
		return CodeOrderNotEligible, fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidDecision):
		return CodeInvalidDecision, fiber.StatusBadRequest
	case errors.Is(err, model.ErrInvalidAmount):
		return CodeInvalidAmount, fiber.StatusBadRequest
	case errors.Is(err, model.ErrMixedPaymentMismatch):
		return CodeMixedPaymentMismatch, fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrMixedPaymentInvalidAmounts):
		return CodeMixedPaymentInvalidAmounts, fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrMissingEvidence):
		return CodeMissingEvidence, fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrEntryNotFound):
		return CodeEntryNotFound, fiber.StatusNotFound
	case errors.Is(err, model.ErrEntryStateConflict):
		return CodeEntryStateConflict, fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidChannel):
		return CodeInvalidChannel, fiber.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCustomer), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest, fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized, fiber.StatusUnauthorized
	}
	return CodeInternal, fiber.StatusInternalServerError
}
