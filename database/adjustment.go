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

func (d Datasource) CreateAdjustment(ctx context.Context, adjustment model.Adjustment) (model.Adjustment, error) {
	adjustment.AdjustmentID = model.GenerateUUIDWithSuffix("adj")
	adjustment.CreatedAt = time.Now()

	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO adjustments (adjustment_id, amount, reason, customer_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	`, adjustment.AdjustmentID, adjustment.Amount, adjustment.Reason, adjustment.CustomerID, adjustment.CreatedAt)
	if err != nil {
		pqErr, ok := err.(*pq.Error)
		if ok && pqErr.Code.Name() == "foreign_key_violation" {
			return model.Adjustment{}, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Customer with ID '%s' not found", adjustment.CustomerID), err)
		}
		return model.Adjustment{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create adjustment", err)
	}

	return adjustment, nil
}

func (d Datasource) GetAdjustmentByID(ctx context.Context, id string) (*model.Adjustment, error) {
	adjustment := model.Adjustment{}

	err := d.Conn.QueryRowContext(ctx, `
		SELECT adjustment_id, amount, COALESCE(reason, ''), COALESCE(customer_id, ''), created_at
		FROM adjustments
		WHERE adjustment_id = $1
	`, id).Scan(&adjustment.AdjustmentID, &adjustment.Amount, &adjustment.Reason, &adjustment.CustomerID, &adjustment.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Adjustment with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve adjustment", err)
	}

	return &adjustment, nil
}

func (d Datasource) GetAllAdjustments(ctx context.Context, limit, offset int) ([]model.Adjustment, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT adjustment_id, amount, COALESCE(reason, ''), COALESCE(customer_id, ''), created_at
		FROM adjustments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve adjustments", err)
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

func (d Datasource) UpdateAdjustment(ctx context.Context, adjustment *model.Adjustment) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE adjustments
		SET amount = $2, reason = $3
		WHERE adjustment_id = $1
	`, adjustment.AdjustmentID, adjustment.Amount, adjustment.Reason)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update adjustment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Adjustment with ID '%s' not found", adjustment.AdjustmentID), nil)
	}

	return nil
}

func (d Datasource) DeleteAdjustment(ctx context.Context, id string) error {
	result, err := d.Conn.ExecContext(ctx, `
		DELETE FROM adjustments WHERE adjustment_id = $1
	`, id)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to delete adjustment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Adjustment with ID '%s' not found", id), nil)
	}

	return nil
}

// GetAdjustmentsForCustomer returns global adjustments plus the ones scoped
// to the given customer.
func (d Datasource) GetAdjustmentsForCustomer(ctx context.Context, customerID string) ([]model.Adjustment, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT adjustment_id, amount, COALESCE(reason, ''), COALESCE(customer_id, ''), created_at
		FROM adjustments
		WHERE customer_id IS NULL OR customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve adjustments", err)
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

func (d Datasource) AdjustmentExistsTxn(ctx context.Context, txn *Txn, id string) (bool, error) {
	var exists bool
	err := txn.tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM adjustments WHERE adjustment_id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to check if adjustment exists", err)
	}
	return exists, nil
}

func scanAdjustments(rows *sql.Rows) ([]model.Adjustment, error) {
	adjustments := []model.Adjustment{}
	for rows.Next() {
		adjustment := model.Adjustment{}
		err := rows.Scan(&adjustment.AdjustmentID, &adjustment.Amount, &adjustment.Reason, &adjustment.CustomerID, &adjustment.CreatedAt)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan adjustment data", err)
		}
		adjustments = append(adjustments, adjustment)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Error occurred while iterating over adjustments", err)
	}

	return adjustments, nil
}
