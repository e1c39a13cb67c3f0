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
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/ledgerline/ledgerline/model"
)

// balanceCacheTTL bounds how stale a cached balance snapshot may get. The
// figure is advisory either way, so a short TTL is enough.
const balanceCacheTTL = 30 * time.Second

// CalculateBalance computes an advisory balance snapshot for a customer:
// the sum of all sale amounts, minus every payout regardless of status,
// plus the applicable adjustments. The reads are not fenced against
// concurrent writers.
func (l *Ledgerline) CalculateBalance(ctx context.Context, customerID string) (*model.CustomerBalance, error) {
	ctx, span := otel.Tracer("balance.service").Start(ctx, "Calculating balance")
	defer span.End()

	cacheKey := fmt.Sprintf("balance:%s", customerID)
	if l.cache != nil {
		cached := model.CustomerBalance{}
		if err := l.cache.Get(ctx, cacheKey, &cached); err == nil && cached.CustomerID != "" {
			return &cached, nil
		}
	}

	if _, err := l.datasource.GetCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	sales, payouts, adjustments, err := l.loadCustomerRecords(ctx, customerID)
	if err != nil {
		return nil, err
	}

	balance := &model.CustomerBalance{CustomerID: customerID}
	for _, sale := range sales {
		balance.TotalSales += sale.Amount
	}
	for _, payout := range payouts {
		balance.TotalPayouts += payout.Amount
	}
	for _, adjustment := range adjustments {
		balance.TotalAdjustments += adjustment.Amount
	}
	balance.Balance = balance.TotalSales - balance.TotalPayouts + balance.TotalAdjustments

	if l.cache != nil {
		if err := l.cache.Set(ctx, cacheKey, balance, balanceCacheTTL); err != nil {
			logrus.Warnf("failed to cache balance for %s: %v", customerID, err)
		}
	}

	return balance, nil
}

// GetTransactionHistory returns a customer's sales, payouts and applicable
// adjustments merged into one list, newest first.
func (l *Ledgerline) GetTransactionHistory(ctx context.Context, customerID string) ([]model.HistoryEntry, error) {
	ctx, span := otel.Tracer("balance.service").Start(ctx, "Fetching transaction history")
	defer span.End()

	if _, err := l.datasource.GetCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	sales, payouts, adjustments, err := l.loadCustomerRecords(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return model.BuildHistory(sales, payouts, adjustments), nil
}

type adjustmentsResult struct {
	adjustments []model.Adjustment
	err         error
}

// loadCustomerRecords gathers the three record sets a balance or history is
// built from. Adjustments are independent of the sales chain, so that read
// runs concurrently with the sales and payouts lookups.
func (l *Ledgerline) loadCustomerRecords(ctx context.Context, customerID string) ([]model.Sale, []model.Payout, []model.Adjustment, error) {
	adjCh := make(chan adjustmentsResult, 1)
	go func() {
		adjustments, err := l.datasource.GetAdjustmentsForCustomer(ctx, customerID)
		adjCh <- adjustmentsResult{adjustments: adjustments, err: err}
	}()

	sales, err := l.datasource.GetSalesByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, nil, err
	}

	saleIDs := make([]string, 0, len(sales))
	for _, sale := range sales {
		saleIDs = append(saleIDs, sale.SaleID)
	}

	payouts, err := l.datasource.GetPayoutsForSales(ctx, saleIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	result := <-adjCh
	if result.err != nil {
		return nil, nil, nil, result.err
	}

	return sales, payouts, result.adjustments, nil
}
