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
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

func expectCustomerRow(mock sqlmock.Sqlmock, customerID string) {
	mock.ExpectQuery("SELECT customer_id, name, surname, created_at").
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "name", "surname", "created_at"}).
			AddRow(customerID, "Ada", "Obi", time.Now()))
}

func TestCalculateBalance(t *testing.T) {
	service, mock := newTestService(t)

	// The adjustments read runs concurrently with the sales and payouts
	// reads, so the expectations cannot be ordered.
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	expectCustomerRow(mock, "cst_1")
	mock.ExpectQuery("SELECT sale_id, amount, status, customer_id, created_at").
		WithArgs("cst_1").
		WillReturnRows(sqlmock.NewRows([]string{"sale_id", "amount", "status", "customer_id", "created_at"}).
			AddRow("sale_a", 120.0, model.StatusSaleActive, "cst_1", now).
			AddRow("sale_b", 80.0, model.StatusSaleCompleted, "cst_1", now))
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}).
			AddRow("pyt_a", 50.0, model.StatusPayoutCompleted, "sale_b", "", now).
			AddRow("pyt_b", 30.0, model.StatusPayoutPending, "sale_a", "", now))
	mock.ExpectQuery("SELECT adjustment_id, amount").
		WithArgs("cst_1").
		WillReturnRows(sqlmock.NewRows([]string{"adjustment_id", "amount", "reason", "customer_id", "created_at"}).
			AddRow("adj_a", 20.0, "goodwill credit", "", now))

	balance, err := service.CalculateBalance(context.Background(), "cst_1")

	assert.NoError(t, err)
	assert.Equal(t, 200.0, balance.TotalSales)
	assert.Equal(t, 80.0, balance.TotalPayouts)
	assert.Equal(t, 20.0, balance.TotalAdjustments)
	assert.Equal(t, 140.0, balance.Balance)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCalculateBalanceNoRecords(t *testing.T) {
	service, mock := newTestService(t)
	mock.MatchExpectationsInOrder(false)

	expectCustomerRow(mock, "cst_empty")
	mock.ExpectQuery("SELECT sale_id, amount, status, customer_id, created_at").
		WithArgs("cst_empty").
		WillReturnRows(sqlmock.NewRows([]string{"sale_id", "amount", "status", "customer_id", "created_at"}))
	mock.ExpectQuery("SELECT adjustment_id, amount").
		WithArgs("cst_empty").
		WillReturnRows(sqlmock.NewRows([]string{"adjustment_id", "amount", "reason", "customer_id", "created_at"}))

	balance, err := service.CalculateBalance(context.Background(), "cst_empty")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, balance.TotalSales)
	assert.Equal(t, 0.0, balance.TotalPayouts)
	assert.Equal(t, 0.0, balance.TotalAdjustments)
	assert.Equal(t, 0.0, balance.Balance)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCalculateBalanceCustomerNotFound(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery("SELECT customer_id, name, surname, created_at").
		WithArgs("cst_missing").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "name", "surname", "created_at"}))

	_, err := service.CalculateBalance(context.Background(), "cst_missing")

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrNotFound, apierror.RootCode(err))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestGetTransactionHistory(t *testing.T) {
	service, mock := newTestService(t)
	mock.MatchExpectationsInOrder(false)

	base := time.Now().Add(-time.Hour)
	expectCustomerRow(mock, "cst_1")
	mock.ExpectQuery("SELECT sale_id, amount, status, customer_id, created_at").
		WithArgs("cst_1").
		WillReturnRows(sqlmock.NewRows([]string{"sale_id", "amount", "status", "customer_id", "created_at"}).
			AddRow("sale_a", 100.0, model.StatusSaleActive, "cst_1", base))
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}).
			AddRow("pyt_a", 40.0, model.StatusPayoutCompleted, "sale_a", "", base.Add(20*time.Minute)))
	mock.ExpectQuery("SELECT adjustment_id, amount").
		WithArgs("cst_1").
		WillReturnRows(sqlmock.NewRows([]string{"adjustment_id", "amount", "reason", "customer_id", "created_at"}).
			AddRow("adj_a", 10.0, "rounding", "cst_1", base.Add(40*time.Minute)))

	history, err := service.GetTransactionHistory(context.Background(), "cst_1")

	assert.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, model.HistoryTypeAdjustment, history[0].Type)
	assert.Equal(t, model.HistoryTypePayout, history[1].Type)
	assert.Equal(t, model.HistoryTypeSale, history[2].Type)
	assert.Empty(t, history[0].Status)
	assert.Equal(t, model.StatusPayoutCompleted, history[1].Status)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
