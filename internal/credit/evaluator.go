// Package credit runs the advisory credit check for customer_credit approvals.
// Nothing here blocks a decision; every problem becomes an advisory.
package credit

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/ledger"
	"github.com/DrGermanius/Gophercash/internal/model"
	"github.com/DrGermanius/Gophercash/internal/payment"
)

const SourceLocal = "local_cache"

type AccountFinder interface {
	FindCreditAccount(ctx context.Context, normalizedName, taxID string) (model.CreditAccount, error)
}

type Evaluator struct {
	accounts AccountFinder
	gateway  ledger.Gateway
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

// NewEvaluator builds an evaluator. gateway may be nil, in which case the locally
// cached balance is always used.
func NewEvaluator(accounts AccountFinder, gateway ledger.Gateway, timeout time.Duration, logger *zap.SugaredLogger) *Evaluator {
	return &Evaluator{accounts: accounts, gateway: gateway, timeout: timeout, logger: logger}
}

func (e *Evaluator) Evaluate(ctx context.Context, order model.Order) model.CreditAssessment {
	name := payment.NormalizeCustomerName(order.CustomerName)
	taxID := payment.NormalizeTaxID(order.CustomerTaxID)

	acc, err := e.accounts.FindCreditAccount(ctx, name, taxID)
	if err != nil {
		if !errors.Is(err, model.ErrNoRecords) {
			e.logger.Errorf("credit account lookup for order %d failed: %s", order.ID, err.Error())
		}
		return notConfigured()
	}
	if !acc.CreditLimit.IsPositive() {
		return notConfigured()
	}

	a := model.CreditAssessment{
		AccountID: acc.ID,
		Active:    acc.Status == model.CreditActive,
		Limit:     decimal.NullDecimal{Decimal: acc.CreditLimit, Valid: true},
		Source:    SourceLocal,
	}
	if !a.Active {
		a.Advisories = append(a.Advisories, model.Advisory{Code: model.AdvisoryCreditInactive})
	}

	balance := acc.CurrentBalance
	if acc.TaxID != "" {
		taxID = acc.TaxID
	}
	if e.gateway != nil && taxID != "" {
		lb, err := e.fetchBalance(ctx, taxID)
		if err != nil {
			e.logger.Warnw("ledger balance unavailable, using cached balance",
				"order", order.ID, "taxID", taxID, "error", err.Error())
			a.Advisories = append(a.Advisories, model.Advisory{
				Code: model.AdvisoryLedgerUnavailable,
				Data: map[string]string{"cachedBalance": balance.String()},
			})
		} else {
			balance = lb.Balance
			a.Source = lb.Source
		}
	}

	available := acc.CreditLimit.Sub(balance)
	a.Balance = decimal.NullDecimal{Decimal: balance, Valid: true}
	a.Available = decimal.NullDecimal{Decimal: available, Valid: true}

	if available.LessThan(order.TotalAmount) {
		a.Advisories = append(a.Advisories, model.Advisory{
			Code: model.AdvisoryInsufficientCredit,
			Data: map[string]string{
				"creditLimit":     acc.CreditLimit.String(),
				"balance":         balance.String(),
				"availableCredit": available.String(),
				"orderAmount":     order.TotalAmount.String(),
			},
		})
	}
	return a
}

func (e *Evaluator) fetchBalance(ctx context.Context, taxID string) (model.LedgerBalance, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.gateway.GetBalance(ctx, taxID)
}

func notConfigured() model.CreditAssessment {
	return model.CreditAssessment{
		Source:     SourceLocal,
		Advisories: []model.Advisory{{Code: model.AdvisoryCreditNotConfigured}},
	}
}
