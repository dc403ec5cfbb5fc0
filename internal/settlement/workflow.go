package settlement

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/DrGermanius/Gophercash/internal/model"
)

const (
	WorkflowID       = "cash-settlement-sweep"
	DefaultTaskQueue = "cash-settlement-task-queue"
)

// SweepWorkflow runs one reconciliation pass. It is started with a cron
// schedule, so every run is a fresh execution.
func SweepWorkflow(ctx workflow.Context) (model.SettlementSummary, error) {
	logger := workflow.GetLogger(ctx)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	})

	var a *Activities
	var summary model.SettlementSummary
	if err := workflow.ExecuteActivity(ctx, a.ReconcileCashCollections).Get(ctx, &summary); err != nil {
		logger.Error("Settlement sweep failed", "error", err)
		return model.SettlementSummary{}, err
	}

	if summary.NeedsReview > 0 {
		logger.Warn("Orders waiting for manual cash review", "count", summary.NeedsReview)
	}
	return summary, nil
}
