package internal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DrGermanius/Gophercash/internal/model"
)

const creditFields = "id, customer_name, normalized_name, tax_id, credit_limit, current_balance, status, notes, updated_at"

// FindCreditAccount looks the account up by normalized customer name first, then by tax id.
func (r Repository) FindCreditAccount(ctx context.Context, normalizedName, taxID string) (model.CreditAccount, error) {
	acc, err := r.scanCreditAccount(r.Conn.QueryRowContext(ctx,
		"SELECT "+creditFields+" FROM credit_accounts WHERE normalized_name = $1", normalizedName))
	if !errors.Is(err, model.ErrNoRecords) || taxID == "" {
		return acc, err
	}

	return r.scanCreditAccount(r.Conn.QueryRowContext(ctx,
		"SELECT "+creditFields+" FROM credit_accounts WHERE tax_id = $1 ORDER BY updated_at DESC LIMIT 1", taxID))
}

func (r Repository) scanCreditAccount(row *sql.Row) (model.CreditAccount, error) {
	var a model.CreditAccount
	err := row.Scan(&a.ID, &a.CustomerName, &a.NormalizedName, &a.TaxID, &a.CreditLimit, &a.CurrentBalance, &a.Status, &a.Notes, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CreditAccount{}, model.ErrNoRecords
		}
		return model.CreditAccount{}, err
	}
	return a, nil
}

func (r Repository) UpsertCreditAccount(ctx context.Context, a model.CreditAccount) (model.CreditAccount, error) {
	row := r.Conn.QueryRowContext(ctx, `INSERT INTO credit_accounts (customer_name, normalized_name, tax_id, credit_limit, current_balance, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (normalized_name) DO UPDATE SET customer_name = EXCLUDED.customer_name, tax_id = EXCLUDED.tax_id,
			credit_limit = EXCLUDED.credit_limit, current_balance = EXCLUDED.current_balance, status = EXCLUDED.status,
			notes = EXCLUDED.notes, updated_at = now()
		RETURNING id, updated_at`,
		a.CustomerName, a.NormalizedName, a.TaxID, a.CreditLimit, a.CurrentBalance, a.Status, a.Notes)
	if err := row.Scan(&a.ID, &a.UpdatedAt); err != nil {
		return model.CreditAccount{}, err
	}
	return a, nil
}

func (r Repository) ListCreditAccounts(ctx context.Context) ([]model.CreditAccount, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+creditFields+" FROM credit_accounts ORDER BY customer_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.CreditAccount
	for rows.Next() {
		var a model.CreditAccount
		err = rows.Scan(&a.ID, &a.CustomerName, &a.NormalizedName, &a.TaxID, &a.CreditLimit, &a.CurrentBalance, &a.Status, &a.Notes, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r Repository) GetWalletStats(ctx context.Context) (model.WalletStats, error) {
	var s model.WalletStats

	err := r.Conn.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM orders WHERE status = 'pending_wallet_review' AND deleted_at IS NULL),
		(SELECT COALESCE(SUM(credit_limit), 0) FROM credit_accounts WHERE status = 'active'),
		(SELECT COALESCE(SUM(current_balance), 0) FROM credit_accounts WHERE status = 'active'),
		(SELECT COUNT(*) FROM validation_records WHERE validated_at >= date_trunc('day', now())),
		(SELECT COUNT(*) FROM credit_accounts WHERE status = 'active' AND credit_limit > 0 AND current_balance >= credit_limit)`).
		Scan(&s.PendingValidations, &s.TotalCredit, &s.TotalBalance, &s.TodayValidations, &s.ExhaustedCredit)
	if err != nil {
		return model.WalletStats{}, err
	}

	return s, nil
}
