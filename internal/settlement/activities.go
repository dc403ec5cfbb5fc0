package settlement

import (
	"context"

	"go.temporal.io/sdk/activity"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// Reconciler runs one reconciliation pass over all candidates.
type Reconciler interface {
	ReconcileCash(ctx context.Context) (model.SettlementReport, error)
}

type Activities struct {
	Reconciler Reconciler
}

func (a *Activities) ReconcileCashCollections(ctx context.Context) (model.SettlementSummary, error) {
	logger := activity.GetLogger(ctx)

	report, err := a.Reconciler.ReconcileCash(ctx)
	if err != nil {
		logger.Error("Cash reconciliation failed", "error", err)
		return model.SettlementSummary{}, err
	}

	s := report.Summary()
	logger.Info("Cash reconciliation finished", "settled", s.Settled, "needsReview", s.NeedsReview, "conflicts", s.Conflicts)
	return s, nil
}
