package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/model"
)

const (
	orderFields = "id, order_number, customer_name, customer_tax_id, status, payment_method, electronic_provider, " +
		"requires_payment, payment_amount, paid_amount, total_amount, is_service, validation_status, validation_notes, updated_at, " +
		"credit_account_id, credit_charged_amount"
	validationFields = "id, order_id, payment_method, payment_type, decision, from_status, to_status, total_amount, " +
		"declared_amount, transferred_amount, cash_amount, evidence_ref, cash_evidence_ref, payment_reference, provider, " +
		"credit_limit, credit_balance, credit_available, credit_source, credit_approved, notes, validated_by, validated_at"
)

type IRepository interface {
	GetOrderByID(context.Context, int64) (model.Order, error)
	HasPaymentEvidence(context.Context, int64) (bool, error)
	ApplyValidation(context.Context, model.AppliedValidation) (model.ValidationRecord, error)
	GetValidationHistory(context.Context, int64) ([]model.ValidationRecord, error)

	FindCreditAccount(ctx context.Context, normalizedName, taxID string) (model.CreditAccount, error)
	UpsertCreditAccount(context.Context, model.CreditAccount) (model.CreditAccount, error)
	ListCreditAccounts(context.Context) ([]model.CreditAccount, error)
	GetWalletStats(context.Context) (model.WalletStats, error)

	CreateCollectionEntry(context.Context, model.CashCollectionEntry) (model.CashCollectionEntry, error)
	ListCollectionSummaries(context.Context, model.CollectionFilter) ([]model.CollectionSummary, error)
	ListSettlementCandidates(context.Context) ([]model.SettlementCandidate, error)
	SettleOrderEntries(ctx context.Context, orderID int64, expectedEntries int) error
	FlagDiscrepancy(context.Context, int64) (model.CashCollectionEntry, error)
	AcceptEntry(ctx context.Context, entryID, operatorID int64) (model.CashCollectionEntry, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = migrate(conn); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

func (r Repository) GetOrderByID(ctx context.Context, id int64) (model.Order, error) {
	var (
		o         model.Order
		accountID sql.NullInt64
		charged   decimal.Decimal
	)
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1 AND deleted_at IS NULL", id)
	err := row.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerTaxID, &o.Status, &o.PaymentMethod, &o.ElectronicProvider,
		&o.RequiresPayment, &o.PaymentAmount, &o.PaidAmount, &o.TotalAmount, &o.IsService, &o.ValidationStatus, &o.ValidationNotes, &o.UpdatedAt,
		&accountID, &charged)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, fmt.Errorf("%w: %d", model.ErrOrderNotFound, id)
		}
		return model.Order{}, err
	}
	if accountID.Valid {
		o.CreditCharge = &model.CreditCharge{AccountID: accountID.Int64, Amount: charged}
	}

	return o, nil
}

func (r Repository) HasPaymentEvidence(ctx context.Context, orderID int64) (bool, error) {
	exist := false

	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM payment_evidences WHERE order_id = $1)", orderID)
	err := row.Scan(&exist)
	if err != nil {
		return false, err
	}

	return exist, nil
}

// ApplyValidation writes the order transition, its ledger row and the credit balance
// movements in one transaction. The order update is guarded by the status and the booked
// credit charge the decision was computed from; a concurrent change makes it affect no rows.
func (r Repository) ApplyValidation(ctx context.Context, av model.AppliedValidation) (model.ValidationRecord, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return model.ValidationRecord{}, err
	}
	defer tx.Rollback()

	t := av.Transition
	var res sql.Result
	if t.ValidationStatus == model.ValidationApproved {
		nextAccount, nextAmount := chargeArgs(bookedAfter(av))
		bookedAccount, bookedAmount := chargeArgs(av.CreditBooked)
		res, err = tx.ExecContext(ctx, `UPDATE orders SET status = $1, validation_status = $2, validation_notes = $3,
			payment_method = $4, electronic_provider = $5, requires_payment = $6, payment_amount = $7, paid_amount = $8,
			credit_account_id = $9, credit_charged_amount = $10, updated_at = now()
			WHERE id = $11 AND status = $12 AND credit_account_id IS NOT DISTINCT FROM $13 AND credit_charged_amount = $14
			AND deleted_at IS NULL`,
			t.ToStatus, t.ValidationStatus, av.Notes, av.Method, av.Provider,
			t.Money.RequiresPayment, t.Money.PaymentAmount, t.Money.PaidAmount, nextAccount, nextAmount,
			av.OrderID, t.FromStatus, bookedAccount, bookedAmount)
	} else {
		res, err = tx.ExecContext(ctx, `UPDATE orders SET validation_status = $1, validation_notes = $2, updated_at = now()
			WHERE id = $3 AND status = $4 AND deleted_at IS NULL`,
			t.ValidationStatus, av.Notes, av.OrderID, t.FromStatus)
	}
	if err != nil {
		return model.ValidationRecord{}, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.ValidationRecord{}, err
	}
	if n == 0 {
		return model.ValidationRecord{}, fmt.Errorf("%w: order %d changed since it was read in status %s", model.ErrOrderNotEligible, av.OrderID, t.FromStatus)
	}

	rec := av.Record
	row := tx.QueryRowContext(ctx, `INSERT INTO validation_records (order_id, payment_method, payment_type, decision, from_status,
		to_status, total_amount, declared_amount, transferred_amount, cash_amount, evidence_ref, cash_evidence_ref, payment_reference,
		provider, credit_limit, credit_balance, credit_available, credit_source, credit_approved, notes, validated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, validated_at`,
		av.OrderID, rec.PaymentMethod, rec.PaymentType, rec.Decision, rec.FromStatus, rec.ToStatus, rec.TotalAmount,
		rec.DeclaredAmount, rec.TransferredAmount, rec.CashAmount, rec.EvidenceRef, rec.CashEvidenceRef, rec.PaymentReference,
		rec.Provider, rec.CreditLimit, rec.CreditBalance, rec.CreditAvailable, rec.CreditSource, rec.CreditApproved, rec.Notes, rec.ValidatedBy)
	if err = row.Scan(&rec.ID, &rec.ValidatedAt); err != nil {
		return model.ValidationRecord{}, err
	}
	rec.OrderID = av.OrderID

	if c := av.CreditRelease; c != nil {
		if err = moveBalance(ctx, tx, c.AccountID, c.Amount.Neg()); err != nil {
			return model.ValidationRecord{}, err
		}
	}
	if c := av.CreditCharge; c != nil {
		if err = moveBalance(ctx, tx, c.AccountID, c.Amount); err != nil {
			return model.ValidationRecord{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return model.ValidationRecord{}, err
	}
	return rec, nil
}

func moveBalance(ctx context.Context, tx *sql.Tx, accountID int64, amount decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE credit_accounts SET current_balance = current_balance + $1, updated_at = now() WHERE id = $2",
		amount, accountID)
	return err
}

// bookedAfter is the charge the order carries once av is applied.
func bookedAfter(av model.AppliedValidation) *model.CreditCharge {
	switch {
	case av.CreditCharge != nil:
		return av.CreditCharge
	case av.CreditRelease != nil:
		return nil
	}
	return av.CreditBooked
}

func chargeArgs(c *model.CreditCharge) (sql.NullInt64, decimal.Decimal) {
	if c == nil {
		return sql.NullInt64{}, decimal.Zero
	}
	return sql.NullInt64{Int64: c.AccountID, Valid: true}, c.Amount
}

func (r Repository) GetValidationHistory(ctx context.Context, orderID int64) ([]model.ValidationRecord, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+validationFields+" FROM validation_records WHERE order_id = $1 ORDER BY validated_at DESC, id DESC", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.ValidationRecord
	for rows.Next() {
		var v model.ValidationRecord
		err = rows.Scan(&v.ID, &v.OrderID, &v.PaymentMethod, &v.PaymentType, &v.Decision, &v.FromStatus, &v.ToStatus, &v.TotalAmount,
			&v.DeclaredAmount, &v.TransferredAmount, &v.CashAmount, &v.EvidenceRef, &v.CashEvidenceRef, &v.PaymentReference, &v.Provider,
			&v.CreditLimit, &v.CreditBalance, &v.CreditAvailable, &v.CreditSource, &v.CreditApproved, &v.Notes, &v.ValidatedBy, &v.ValidatedAt)
		if err != nil {
			return nil, err
		}

		history = append(history, v)
	}

	return history, rows.Err()
}
