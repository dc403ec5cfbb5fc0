package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DrGermanius/Gophercash/internal/model"
	"github.com/DrGermanius/Gophercash/internal/settlement"
)

func (s Service) RecordCollection(ctx context.Context, operatorID int64, in model.CollectionInput) (model.CashCollectionEntry, error) {
	channel := model.CollectionChannel(strings.ToLower(strings.TrimSpace(in.Channel)))
	if !channel.Valid() {
		return model.CashCollectionEntry{}, fmt.Errorf("%w: %q", model.ErrInvalidChannel, in.Channel)
	}
	if !in.Amount.IsPositive() {
		return model.CashCollectionEntry{}, fmt.Errorf("%w: collected amount must be positive", model.ErrInvalidAmount)
	}

	if _, err := s.Repository.GetOrderByID(ctx, in.OrderID); err != nil {
		return model.CashCollectionEntry{}, err
	}

	e, err := s.Repository.CreateCollectionEntry(ctx, model.CashCollectionEntry{
		OrderID:    in.OrderID,
		Channel:    channel,
		Amount:     in.Amount,
		Reference:  strings.TrimSpace(in.Reference),
		RecordedBy: operatorID,
	})
	if err != nil {
		return model.CashCollectionEntry{}, err
	}

	CashCollectedAmount.WithLabelValues(string(channel)).Add(in.Amount.InexactFloat64())
	return e, nil
}

func (s Service) ListCollections(ctx context.Context, status, channel string) ([]model.CollectionSummary, error) {
	f := model.CollectionFilter{
		Status:  model.EntryStatus(strings.ToLower(strings.TrimSpace(status))),
		Channel: model.CollectionChannel(strings.ToLower(strings.TrimSpace(channel))),
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: entry status %q", ErrInvalidRequest, status)
	}
	if f.Channel != "" && !f.Channel.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidChannel, channel)
	}

	summaries, err := s.Repository.ListCollectionSummaries(ctx, f)
	if err != nil {
		return nil, err
	}

	if len(summaries) == 0 {
		return nil, model.ErrNoRecords
	}
	return summaries, nil
}

// ReconcileCash runs one settlement pass. Orders within tolerance have their open entries
// collected; the rest, including owed orders with nothing collected, are reported for review. An order whose entries changed under the pass
// is reported as a conflict and picked up again by the next run.
func (s Service) ReconcileCash(ctx context.Context) (model.SettlementReport, error) {
	report := model.SettlementReport{
		Settled:     []model.SettlementOutcome{},
		NeedsReview: []model.SettlementOutcome{},
		Conflicts:   []int64{},
	}

	candidates, err := s.Repository.ListSettlementCandidates(ctx)
	if err != nil {
		return report, err
	}

	for _, c := range candidates {
		out := settlement.Evaluate(c, s.tolerance)
		if !out.Settled {
			report.NeedsReview = append(report.NeedsReview, out)
			SettlementOutcomesTotal.WithLabelValues("review").Inc()
			continue
		}
		if c.OpenEntries == 0 {
			continue
		}

		err = s.Repository.SettleOrderEntries(ctx, c.OrderID, c.OpenEntries)
		if errors.Is(err, model.ErrEntryStateConflict) {
			s.logger.Warnf("settlement of order %d skipped: %s", c.OrderID, err.Error())
			report.Conflicts = append(report.Conflicts, c.OrderID)
			SettlementOutcomesTotal.WithLabelValues("conflict").Inc()
			continue
		}
		if err != nil {
			return report, err
		}

		report.Settled = append(report.Settled, out)
		SettlementOutcomesTotal.WithLabelValues("settled").Inc()
	}

	s.logger.Infow("cash settlement pass finished",
		"candidates", len(candidates), "settled", len(report.Settled),
		"review", len(report.NeedsReview), "conflicts", len(report.Conflicts))
	return report, nil
}

// ReviewQueue lists orders whose collections fall outside tolerance. It changes nothing.
func (s Service) ReviewQueue(ctx context.Context) ([]model.SettlementOutcome, error) {
	candidates, err := s.Repository.ListSettlementCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var queue []model.SettlementOutcome
	for _, c := range candidates {
		if out := settlement.Evaluate(c, s.tolerance); !out.Settled {
			queue = append(queue, out)
		}
	}
	if len(queue) == 0 {
		return nil, model.ErrNoRecords
	}
	return queue, nil
}

func (s Service) FlagDiscrepancy(ctx context.Context, entryID int64) (model.CashCollectionEntry, error) {
	return s.Repository.FlagDiscrepancy(ctx, entryID)
}

func (s Service) AcceptEntry(ctx context.Context, entryID, operatorID int64) (model.CashCollectionEntry, error) {
	e, err := s.Repository.AcceptEntry(ctx, entryID, operatorID)
	if err != nil {
		return model.CashCollectionEntry{}, err
	}

	s.logger.Infow("cash entry accepted", "entry", e.ID, "order", e.OrderID, "operator", operatorID)
	return e, nil
}
