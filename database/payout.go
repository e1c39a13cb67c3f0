package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

func (d Datasource) InsertPayout(ctx context.Context, txn *Txn, payout *model.Payout) error {
	payout.PayoutID = model.GenerateUUIDWithSuffix("pyt")
	payout.CreatedAt = time.Now()
	if payout.Status == "" {
		payout.Status = model.StatusPayoutPending
	}

	// NULLIF keeps the adjustment reference NULL when no adjustment is
	// attached, so the foreign key only fires for real references.
	_, err := txn.tx.ExecContext(ctx, `
		INSERT INTO payouts (payout_id, amount, status, sale_id, adjustment_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`, payout.PayoutID, payout.Amount, payout.Status, payout.SaleID, payout.AdjustmentID, payout.CreatedAt)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create payout", err)
	}

	return nil
}

func (d Datasource) GetPayout(ctx context.Context, id string) (*model.Payout, error) {
	payout := model.Payout{}

	err := d.Conn.QueryRowContext(ctx, `
		SELECT payout_id, amount, status, sale_id, COALESCE(adjustment_id, ''), created_at
		FROM payouts
		WHERE payout_id = $1
	`, id).Scan(&payout.PayoutID, &payout.Amount, &payout.Status, &payout.SaleID, &payout.AdjustmentID, &payout.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Payout with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve payout", err)
	}

	return &payout, nil
}

// GetPayoutForUpdate loads a payout inside the caller's scope and row-locks
// it for the remainder of the transaction.
func (d Datasource) GetPayoutForUpdate(ctx context.Context, txn *Txn, id string) (*model.Payout, error) {
	payout := model.Payout{}

	err := txn.tx.QueryRowContext(ctx, `
		SELECT payout_id, amount, status, sale_id, COALESCE(adjustment_id, ''), created_at
		FROM payouts
		WHERE payout_id = $1
		FOR UPDATE
	`, id).Scan(&payout.PayoutID, &payout.Amount, &payout.Status, &payout.SaleID, &payout.AdjustmentID, &payout.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Payout with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve payout", err)
	}

	return &payout, nil
}

func (d Datasource) UpdatePayoutTxn(ctx context.Context, txn *Txn, payout *model.Payout) error {
	result, err := txn.tx.ExecContext(ctx, `
		UPDATE payouts
		SET amount = $2, status = $3, adjustment_id = NULLIF($4, '')
		WHERE payout_id = $1
	`, payout.PayoutID, payout.Amount, payout.Status, payout.AdjustmentID)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update payout", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Payout with ID '%s' not found", payout.PayoutID), nil)
	}

	return nil
}

func (d Datasource) DeletePayoutTxn(ctx context.Context, txn *Txn, id string) error {
	result, err := txn.tx.ExecContext(ctx, `
		DELETE FROM payouts WHERE payout_id = $1
	`, id)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to delete payout", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Payout with ID '%s' not found", id), nil)
	}

	return nil
}

// GetPayoutsForSales returns every payout referencing one of the given
// sales, regardless of status.
func (d Datasource) GetPayoutsForSales(ctx context.Context, saleIDs []string) ([]model.Payout, error) {
	if len(saleIDs) == 0 {
		return []model.Payout{}, nil
	}

	rows, err := d.Conn.QueryContext(ctx, `
		SELECT payout_id, amount, status, sale_id, COALESCE(adjustment_id, ''), created_at
		FROM payouts
		WHERE sale_id = ANY($1)
		ORDER BY created_at DESC
	`, pq.Array(saleIDs))
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve payouts", err)
	}
	defer rows.Close()

	payouts := []model.Payout{}
	for rows.Next() {
		payout := model.Payout{}
		err = rows.Scan(&payout.PayoutID, &payout.Amount, &payout.Status, &payout.SaleID, &payout.AdjustmentID, &payout.CreatedAt)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan payout data", err)
		}
		payouts = append(payouts, payout)
	}

	if err = rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Error occurred while iterating over payouts", err)
	}

	return payouts, nil
}
