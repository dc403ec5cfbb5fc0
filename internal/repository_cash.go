package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DrGermanius/Gophercash/internal/model"
)

const (
	entryFields = "id, order_id, channel, amount, status, reference, recorded_by, created_at, collected_at, accepted_by, accepted_at"
	openStatus  = "('pending', 'discrepancy')"
)

func (r Repository) CreateCollectionEntry(ctx context.Context, e model.CashCollectionEntry) (model.CashCollectionEntry, error) {
	row := r.Conn.QueryRowContext(ctx, `INSERT INTO cash_collection_entries (order_id, channel, amount, status, reference, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		e.OrderID, e.Channel, e.Amount, model.EntryPending, e.Reference, e.RecordedBy)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return model.CashCollectionEntry{}, err
	}
	e.Status = model.EntryPending
	return e, nil
}

// ListCollectionSummaries aggregates entries per order, optionally narrowed by entry status and channel.
func (r Repository) ListCollectionSummaries(ctx context.Context, f model.CollectionFilter) ([]model.CollectionSummary, error) {
	var (
		where []string
		args  []interface{}
	)
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, "e.status = $"+strconv.Itoa(len(args)))
	}
	if f.Channel != "" {
		args = append(args, f.Channel)
		where = append(where, "e.channel = $"+strconv.Itoa(len(args)))
	}

	q := `SELECT o.id, o.order_number, o.total_amount, o.paid_amount, COUNT(e.id), COALESCE(SUM(e.amount), 0),
		string_agg(DISTINCT e.channel, ',')
		FROM cash_collection_entries e JOIN orders o ON o.id = e.order_id`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " GROUP BY o.id, o.order_number, o.total_amount, o.paid_amount ORDER BY o.id"

	rows, err := r.Conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.CollectionSummary
	for rows.Next() {
		var (
			s        model.CollectionSummary
			channels string
		)
		err = rows.Scan(&s.OrderID, &s.OrderNumber, &s.TotalAmount, &s.PaidAmount, &s.EntryCount, &s.Amount, &channels)
		if err != nil {
			return nil, err
		}
		for _, c := range strings.Split(channels, ",") {
			if c != "" {
				s.Channels = append(s.Channels, model.CollectionChannel(c))
			}
		}

		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// ListSettlementCandidates returns every order with open entries, and every approved order
// that still owes payment and has not been covered by settled entries.
func (r Repository) ListSettlementCandidates(ctx context.Context) ([]model.SettlementCandidate, error) {
	rows, err := r.Conn.QueryContext(ctx, `SELECT o.id, o.order_number, o.total_amount, o.paid_amount,
		COALESCE(SUM(e.amount) FILTER (WHERE e.status IN ('collected', 'accepted')), 0),
		COALESCE(SUM(e.amount) FILTER (WHERE e.status IN `+openStatus+`), 0),
		COUNT(e.id) FILTER (WHERE e.status IN `+openStatus+`)
		FROM orders o LEFT JOIN cash_collection_entries e ON e.order_id = o.id
		WHERE o.deleted_at IS NULL
		GROUP BY o.id, o.order_number, o.total_amount, o.paid_amount
		HAVING COUNT(e.id) FILTER (WHERE e.status IN `+openStatus+`) > 0
			OR (o.validation_status = 'approved' AND o.status <> 'cancelled' AND o.requires_payment
				AND o.total_amount - o.paid_amount - COALESCE(SUM(e.amount) FILTER (WHERE e.status IN ('collected', 'accepted')), 0) > 0)
		ORDER BY o.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []model.SettlementCandidate
	for rows.Next() {
		var c model.SettlementCandidate
		err = rows.Scan(&c.OrderID, &c.OrderNumber, &c.TotalAmount, &c.PaidAmount, &c.SettledAmount, &c.OpenAmount, &c.OpenEntries)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// SettleOrderEntries moves every open entry of an order to collected. If the number of
// rows moved is not the number that was aggregated, nothing is changed.
func (r Repository) SettleOrderEntries(ctx context.Context, orderID int64, expectedEntries int) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE cash_collection_entries SET status = 'collected', collected_at = now() WHERE order_id = $1 AND status IN "+openStatus,
		orderID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != int64(expectedEntries) {
		return fmt.Errorf("%w: order %d moved %d of %d entries", model.ErrEntryStateConflict, orderID, n, expectedEntries)
	}

	return tx.Commit()
}

func (r Repository) FlagDiscrepancy(ctx context.Context, entryID int64) (model.CashCollectionEntry, error) {
	row := r.Conn.QueryRowContext(ctx, "UPDATE cash_collection_entries SET status = 'discrepancy' WHERE id = $1 AND status = 'pending' RETURNING "+entryFields,
		entryID)
	return r.guardedEntry(ctx, row, entryID)
}

func (r Repository) AcceptEntry(ctx context.Context, entryID, operatorID int64) (model.CashCollectionEntry, error) {
	row := r.Conn.QueryRowContext(ctx, `UPDATE cash_collection_entries SET status = 'accepted', accepted_by = $2, accepted_at = now()
		WHERE id = $1 AND status = 'collected' RETURNING `+entryFields,
		entryID, operatorID)
	return r.guardedEntry(ctx, row, entryID)
}

// guardedEntry scans the result of a status-guarded update and tells a missing entry
// apart from one in the wrong status.
func (r Repository) guardedEntry(ctx context.Context, row *sql.Row, entryID int64) (model.CashCollectionEntry, error) {
	var e model.CashCollectionEntry
	err := row.Scan(&e.ID, &e.OrderID, &e.Channel, &e.Amount, &e.Status, &e.Reference, &e.RecordedBy, &e.CreatedAt,
		&e.CollectedAt, &e.AcceptedBy, &e.AcceptedAt)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.CashCollectionEntry{}, err
	}

	var status model.EntryStatus
	err = r.Conn.QueryRowContext(ctx, "SELECT status FROM cash_collection_entries WHERE id = $1", entryID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CashCollectionEntry{}, fmt.Errorf("%w: %d", model.ErrEntryNotFound, entryID)
	}
	if err != nil {
		return model.CashCollectionEntry{}, err
	}
	return model.CashCollectionEntry{}, fmt.Errorf("%w: entry %d is %s", model.ErrEntryStateConflict, entryID, status)
}
