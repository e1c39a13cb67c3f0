package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

func (d Datasource) InsertSale(ctx context.Context, txn *Txn, sale *model.Sale) error {
	sale.SaleID = model.GenerateUUIDWithSuffix("sale")
	sale.CreatedAt = time.Now()
	if sale.Status == "" {
		sale.Status = model.StatusSaleActive
	}

	_, err := txn.tx.ExecContext(ctx, `
		INSERT INTO sales (sale_id, amount, status, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, sale.SaleID, sale.Amount, sale.Status, sale.CustomerID, sale.CreatedAt)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create sale", err)
	}

	return nil
}

func (d Datasource) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	sale := model.Sale{}

	err := d.Conn.QueryRowContext(ctx, `
		SELECT sale_id, amount, status, customer_id, created_at
		FROM sales
		WHERE sale_id = $1
	`, id).Scan(&sale.SaleID, &sale.Amount, &sale.Status, &sale.CustomerID, &sale.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Sale with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve sale", err)
	}

	return &sale, nil
}

// GetSaleForUpdate loads a sale inside the caller's scope and row-locks it
// for the remainder of the transaction.
func (d Datasource) GetSaleForUpdate(ctx context.Context, txn *Txn, id string) (*model.Sale, error) {
	sale := model.Sale{}

	err := txn.tx.QueryRowContext(ctx, `
		SELECT sale_id, amount, status, customer_id, created_at
		FROM sales
		WHERE sale_id = $1
		FOR UPDATE
	`, id).Scan(&sale.SaleID, &sale.Amount, &sale.Status, &sale.CustomerID, &sale.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Sale with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve sale", err)
	}

	return &sale, nil
}

func (d Datasource) UpdateSaleTxn(ctx context.Context, txn *Txn, sale *model.Sale) error {
	result, err := txn.tx.ExecContext(ctx, `
		UPDATE sales
		SET amount = $2, status = $3
		WHERE sale_id = $1
	`, sale.SaleID, sale.Amount, sale.Status)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update sale", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Sale with ID '%s' not found", sale.SaleID), nil)
	}

	return nil
}

func (d Datasource) DeleteSaleTxn(ctx context.Context, txn *Txn, id string) error {
	result, err := txn.tx.ExecContext(ctx, `
		DELETE FROM sales WHERE sale_id = $1
	`, id)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to delete sale", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Sale with ID '%s' not found", id), nil)
	}

	return nil
}

func (d Datasource) GetSalesByCustomer(ctx context.Context, customerID string) ([]model.Sale, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT sale_id, amount, status, customer_id, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve sales", err)
	}
	defer rows.Close()

	sales := []model.Sale{}
	for rows.Next() {
		sale := model.Sale{}
		err = rows.Scan(&sale.SaleID, &sale.Amount, &sale.Status, &sale.CustomerID, &sale.CreatedAt)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan sale data", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Error occurred while iterating over sales", err)
	}

	return sales, nil
}

func (d Datasource) SaleExistsTxn(ctx context.Context, txn *Txn, id string) (bool, error) {
	var exists bool
	err := txn.tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM sales WHERE sale_id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to check if sale exists", err)
	}
	return exists, nil
}

// ReconcileSaleStatus recomputes a sale's status from the sum of its
// completed payouts as a single conditional update, so the read of the sum
// and the write of the status cannot interleave with a concurrent scope. A
// sale whose completed sum covers its amount becomes "completed"; a
// previously completed sale whose sum no longer covers it is demoted to
// "pending"; anything else keeps its status. Returns the resulting status.
func (d Datasource) ReconcileSaleStatus(ctx context.Context, txn *Txn, saleID string) (string, error) {
	var status string
	err := txn.tx.QueryRowContext(ctx, `
		UPDATE sales
		SET status = CASE
			WHEN COALESCE((
				SELECT SUM(amount) FROM payouts
				WHERE sale_id = sales.sale_id AND status = 'completed'
			), 0) >= sales.amount THEN 'completed'
			WHEN sales.status = 'completed' THEN 'pending'
			ELSE sales.status
		END
		WHERE sale_id = $1
		RETURNING status
	`, saleID).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Sale with ID '%s' not found", saleID), err)
		}
		return "", apierror.NewAPIError(apierror.ErrInternalServer, "Failed to reconcile sale status", err)
	}
	return status, nil
}
