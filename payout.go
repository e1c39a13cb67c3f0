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
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

// CreatePayout persists a new payout against an existing sale and
// reconciles the sale's status, all inside one transaction scope. The
// payout may carry an adjustment reference, which must resolve.
func (l *Ledgerline) CreatePayout(ctx context.Context, payout model.Payout) (model.Payout, error) {
	ctx, span := otel.Tracer("payout.service").Start(ctx, "Creating payout")
	defer span.End()

	if payout.Status == model.StatusPayoutCompleted {
		return model.Payout{}, apierror.NewAPIError(apierror.ErrInvalidInput,
			"Cannot create a payout with status 'completed'. Use ProcessPayout instead.", nil)
	}

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return model.Payout{}, err
	}
	defer func() { _ = txn.Rollback() }()

	exists, err := l.datasource.SaleExistsTxn(ctx, txn, payout.SaleID)
	if err != nil {
		return model.Payout{}, apierror.NewTransactionError(err)
	}
	if !exists {
		return model.Payout{}, apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrNotFound,
			fmt.Sprintf("Sale with ID '%s' not found", payout.SaleID), nil))
	}

	if payout.AdjustmentID != "" {
		exists, err := l.datasource.AdjustmentExistsTxn(ctx, txn, payout.AdjustmentID)
		if err != nil {
			return model.Payout{}, apierror.NewTransactionError(err)
		}
		if !exists {
			return model.Payout{}, apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrNotFound,
				fmt.Sprintf("Adjustment with ID '%s' not found", payout.AdjustmentID), nil))
		}
	}

	if err := l.datasource.InsertPayout(ctx, txn, &payout); err != nil {
		return model.Payout{}, apierror.NewTransactionError(err)
	}

	if _, err := l.datasource.ReconcileSaleStatus(ctx, txn, payout.SaleID); err != nil {
		return model.Payout{}, apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return model.Payout{}, apierror.NewTransactionError(err)
	}

	return payout, nil
}

// GetPayout is a read-only lookup and takes no transaction scope.
func (l *Ledgerline) GetPayout(ctx context.Context, id string) (*model.Payout, error) {
	return l.datasource.GetPayout(ctx, id)
}

// UpdatePayout applies a partial update to a payout and reconciles its
// sale. A patch that tries to move the status to 'completed' is rejected:
// that transition is only reachable through ProcessPayout.
func (l *Ledgerline) UpdatePayout(ctx context.Context, id string, patch model.PayoutPatch) (*model.Payout, error) {
	ctx, span := otel.Tracer("payout.service").Start(ctx, "Updating payout")
	defer span.End()

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = txn.Rollback() }()

	if patch.Status != nil && *patch.Status == model.StatusPayoutCompleted {
		return nil, apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrInvalidInput,
			"Cannot update status to 'completed' directly. Use ProcessPayout instead.", nil))
	}

	payout, err := l.datasource.GetPayoutForUpdate(ctx, txn, id)
	if err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if patch.AdjustmentID != nil && *patch.AdjustmentID != "" {
		exists, err := l.datasource.AdjustmentExistsTxn(ctx, txn, *patch.AdjustmentID)
		if err != nil {
			return nil, apierror.NewTransactionError(err)
		}
		if !exists {
			return nil, apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrNotFound,
				fmt.Sprintf("Adjustment with ID '%s' not found", *patch.AdjustmentID), nil))
		}
	}

	if patch.Amount != nil {
		payout.Amount = *patch.Amount
	}
	if patch.Status != nil {
		payout.Status = *patch.Status
	}
	if patch.AdjustmentID != nil {
		payout.AdjustmentID = *patch.AdjustmentID
	}

	if err := l.datasource.UpdatePayoutTxn(ctx, txn, payout); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if _, err := l.datasource.ReconcileSaleStatus(ctx, txn, payout.SaleID); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	return payout, nil
}

// ProcessPayout is the only path that moves a payout to 'completed'. It
// persists the transition and reconciles the sale inside one scope.
func (l *Ledgerline) ProcessPayout(ctx context.Context, id string) (*model.Payout, error) {
	ctx, span := otel.Tracer("payout.service").Start(ctx, "Processing payout")
	defer span.End()

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = txn.Rollback() }()

	payout, err := l.datasource.GetPayoutForUpdate(ctx, txn, id)
	if err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	payout.Status = model.StatusPayoutCompleted
	if err := l.datasource.UpdatePayoutTxn(ctx, txn, payout); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if _, err := l.datasource.ReconcileSaleStatus(ctx, txn, payout.SaleID); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return nil, apierror.NewTransactionError(err)
	}

	return payout, nil
}

// DeletePayout removes a payout and reconciles its sale, since deleting a
// completed payout can drop the completed sum below the sale amount.
func (l *Ledgerline) DeletePayout(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("payout.service").Start(ctx, "Deleting payout")
	defer span.End()

	txn, err := l.datasource.BeginTxn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = txn.Rollback() }()

	payout, err := l.datasource.GetPayoutForUpdate(ctx, txn, id)
	if err != nil {
		return apierror.NewTransactionError(err)
	}

	if err := l.datasource.DeletePayoutTxn(ctx, txn, id); err != nil {
		return apierror.NewTransactionError(err)
	}

	if _, err := l.datasource.ReconcileSaleStatus(ctx, txn, payout.SaleID); err != nil {
		return apierror.NewTransactionError(err)
	}

	if err := txn.Commit(); err != nil {
		return apierror.NewTransactionError(err)
	}

	return nil
}
