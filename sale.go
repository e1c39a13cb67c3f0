/*
Copyright 2025 Ledgerline Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ledgerline

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

// CreateSale records a new sale for an existing customer. The sale starts
// out 'active' unless the caller picks another non-terminal status.
func (l *Ledgerline) CreateSale(ctx context.Context, sale model.Sale) (model.Sale, error) {
	ctx, span := otel.Tracer("sale.service").Start(ctx, "Creating sale")
	defer span.End()

	if sale.Status == model.StatusSaleCompleted {
		return model.Sale{}, apierror.NewAPIError(apierror.ErrInvalidInput,
			"Cannot create a sale with status 'completed'. Completion is derived from payouts.", nil)
	}

	if _, err := l.datasource.GetCustomerByID(ctx, sale.CustomerID); err != nil {
		return model.Sale{}, err
	}

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return model.Sale{}, err
	}
	defer func() { _ = txn.Rollback() }()

	if err := l.datasource.InsertSale(ctx, txn, &sale); err != nil {
		return model.Sale{}, apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return model.Sale{}, apierror.NewTransactionError(err)
	}

	return sale, nil
}

func (l *Ledgerline) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	return l.datasource.GetSale(ctx, id)
}

// UpdateSale applies a partial update to a sale. Setting the status to
// 'completed' by hand is rejected; that state is owned by reconciliation.
func (l *Ledgerline) UpdateSale(ctx context.Context, id string, patch model.SalePatch) (*model.Sale, error) {
	ctx, span := otel.Tracer("sale.service").Start(ctx, "Updating sale")
	defer span.End()

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = txn.Rollback() }()

	if patch.Status != nil && *patch.Status == model.StatusSaleCompleted {
		return nil, apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrInvalidInput,
			"Cannot set a sale's status to 'completed' directly. Completion is derived from payouts.", nil))
	}

	sale, err := l.datasource.GetSaleForUpdate(ctx, txn, id)
	if err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if patch.Amount != nil {
		sale.Amount = *patch.Amount
	}
	if patch.Status != nil {
		sale.Status = *patch.Status
	}

	if err := l.datasource.UpdateSaleTxn(ctx, txn, sale); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	// An amount change can move the sale across the completion threshold.
	if _, err := l.datasource.ReconcileSaleStatus(ctx, txn, sale.SaleID); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	return l.datasource.GetSale(ctx, id)
}

func (l *Ledgerline) DeleteSale(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("sale.service").Start(ctx, "Deleting sale")
	defer span.End()

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = txn.Rollback() }()

	if err := l.datasource.DeleteSaleTxn(ctx, txn, id); err != nil {
		return apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return apierror.NewTransactionError(err)
	}

	return nil
}
