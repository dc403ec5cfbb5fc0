package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

// flexAmount accepts an amount sent either as a JSON number or as a string.
type flexAmount string

func (a *flexAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = flexAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", model.ErrInvalidAmount, string(b))
	}
	*a = flexAmount(n.String())
	return nil
}

type validateRequest struct {
	PaymentMethod     string     `json:"paymentMethod"`
	Decision          string     `json:"decision"`
	PaymentType       string     `json:"paymentType"`
	TransferredAmount flexAmount `json:"transferredAmount"`
	CashAmount        flexAmount `json:"cashAmount"`
	DeclaredAmount    flexAmount `json:"declaredAmount"`
	EvidenceRef       string     `json:"evidenceRef"`
	CashEvidenceRef   string     `json:"cashEvidenceRef"`
	PaymentReference  string     `json:"paymentReference"`
	Provider          string     `json:"electronicProvider"`
	CreditApproved    bool       `json:"creditApproved"`
	Notes             string     `json:"notes"`
}

func (h *Handlers) ValidateOrder(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	var r validateRequest
	if err = c.BodyParser(&r); err != nil {
		h.logger.Errorf("Error on validate order request: %s", err.Error())
		if errors.Is(err, model.ErrInvalidAmount) {
			return h.fail(c, err)
		}
		return h.fail(c, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error()))
	}

	snapshot, err := h.Service.ValidateOrder(c.UserContext(), model.ValidateInput{
		OrderID:           id,
		OperatorID:        operatorID(c),
		PaymentMethod:     r.PaymentMethod,
		Decision:          r.Decision,
		PaymentType:       r.PaymentType,
		TransferredAmount: string(r.TransferredAmount),
		CashAmount:        string(r.CashAmount),
		DeclaredAmount:    string(r.DeclaredAmount),
		EvidenceRef:       r.EvidenceRef,
		CashEvidenceRef:   r.CashEvidenceRef,
		PaymentReference:  r.PaymentReference,
		Provider:          r.Provider,
		CreditApproved:    r.CreditApproved,
		Notes:             r.Notes,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	o, err := h.Service.GetOrder(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) ValidationHistory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	history, err := h.Service.GetValidationHistory(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *Handlers) RecordCollection(c *fiber.Ctx) error {
	var i model.CollectionInput

	if err := c.BodyParser(&i); err != nil || i.OrderID == 0 {
		return h.fail(c, fmt.Errorf("%w: orderId, channel and amount are required", ErrInvalidRequest))
	}

	e, err := h.Service.RecordCollection(c.UserContext(), operatorID(c), i)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *Handlers) ListCollections(c *fiber.Ctx) error {
	summaries, err := h.Service.ListCollections(c.UserContext(), c.Query("status"), c.Query("channel"))
	if err != nil {
		if errors.Is(err, model.ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

func (h *Handlers) Reconcile(c *fiber.Ctx) error {
	report, err := h.Service.ReconcileCash(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handlers) ReviewQueue(c *fiber.Ctx) error {
	queue, err := h.Service.ReviewQueue(c.UserContext())
	if err != nil {
		if errors.Is(err, model.ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(queue)
}

func (h *Handlers) FlagDiscrepancy(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	e, err := h.Service.FlagDiscrepancy(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(e)
}

func (h *Handlers) AcceptEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	e, err := h.Service.AcceptEntry(c.UserContext(), id, operatorID(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(e)
}

func (h *Handlers) ListCreditAccounts(c *fiber.Ctx) error {
	accounts, err := h.Service.ListCreditAccounts(c.UserContext())
	if err != nil {
		if errors.Is(err, model.ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *Handlers) UpsertCreditAccount(c *fiber.Ctx) error {
	var i model.CreditAccountInput

	if err := c.BodyParser(&i); err != nil {
		return h.fail(c, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error()))
	}

	acc, err := h.Service.UpsertCreditAccount(c.UserContext(), i)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(acc)
}

func (h *Handlers) WalletStats(c *fiber.Ctx) error {
	stats, err := h.Service.GetWalletStats(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *Handlers) fail(c *fiber.Ctx, err error) error {
	if _, status := errorCode(err); status == fiber.StatusInternalServerError {
		h.logger.Errorf("Error on %s %s: %s", c.Method(), c.Path(), err.Error())
	}
	return errorResponse(c, err)
}

func errorResponse(c *fiber.Ctx, err error) error {
	code, status := errorCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{"status": "error", "code": code, "message": message})
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrInvalidRequest, c.Params("id"))
	}
	return id, nil
}
