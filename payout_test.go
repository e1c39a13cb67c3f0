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
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/config"
	"github.com/ledgerline/ledgerline/database"
	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

func newTestDataSource() (database.IDataSource, sqlmock.Sqlmock, error) {
	config.MockConfig(&config.Configuration{})
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Printf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return database.Datasource{Conn: db}, mock, nil
}

func newTestService(t *testing.T) (*Ledgerline, sqlmock.Sqlmock) {
	t.Helper()
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}
	service, err := NewLedgerline(datasource)
	if err != nil {
		t.Fatalf("Error creating Ledgerline instance: %s", err)
	}
	return service, mock
}

func TestCreatePayout(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO payouts").
		WithArgs(sqlmock.AnyArg(), 50.0, model.StatusPayoutPending, "sale_123", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("UPDATE sales").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSaleActive))
	mock.ExpectCommit()

	result, err := service.CreatePayout(context.Background(), model.Payout{
		Amount: 50.0,
		SaleID: "sale_123",
	})

	assert.NoError(t, err)
	assert.Contains(t, result.PayoutID, "pyt_")
	assert.Equal(t, model.StatusPayoutPending, result.Status)
	assert.WithinDuration(t, time.Now(), result.CreatedAt, time.Second)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCreatePayoutWithAdjustment(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("adj_456").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO payouts").
		WithArgs(sqlmock.AnyArg(), 25.0, model.StatusPayoutPending, "sale_123", "adj_456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("UPDATE sales").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSaleActive))
	mock.ExpectCommit()

	result, err := service.CreatePayout(context.Background(), model.Payout{
		Amount:       25.0,
		SaleID:       "sale_123",
		AdjustmentID: "adj_456",
	})

	assert.NoError(t, err)
	assert.Equal(t, "adj_456", result.AdjustmentID)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCreatePayoutRejectsCompletedStatus(t *testing.T) {
	service, mock := newTestService(t)

	_, err := service.CreatePayout(context.Background(), model.Payout{
		Amount: 50.0,
		SaleID: "sale_123",
		Status: model.StatusPayoutCompleted,
	})

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrInvalidInput, apierror.RootCode(err))

	// No transaction may have been opened.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCreatePayoutSaleNotFound(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sale_missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := service.CreatePayout(context.Background(), model.Payout{
		Amount: 50.0,
		SaleID: "sale_missing",
	})

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrNotFound, apierror.RootCode(err))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCreatePayoutRollsBackOnInsertFailure(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO payouts").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := service.CreatePayout(context.Background(), model.Payout{
		Amount: 50.0,
		SaleID: "sale_123",
	})

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrTransactionFailed, apierror.Code(err))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestUpdatePayoutRejectsCompletedStatus(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	completed := model.StatusPayoutCompleted
	_, err := service.UpdatePayout(context.Background(), "pyt_123", model.PayoutPatch{Status: &completed})

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrInvalidInput, apierror.RootCode(err))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestUpdatePayoutAmount(t *testing.T) {
	service, mock := newTestService(t)

	createdAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WithArgs("pyt_123").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}).
			AddRow("pyt_123", 40.0, model.StatusPayoutPending, "sale_123", "", createdAt))
	mock.ExpectExec("UPDATE payouts").
		WithArgs("pyt_123", 60.0, model.StatusPayoutPending, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE sales").
		WithArgs("sale_123").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSaleActive))
	mock.ExpectCommit()

	amount := 60.0
	result, err := service.UpdatePayout(context.Background(), "pyt_123", model.PayoutPatch{Amount: &amount})

	assert.NoError(t, err)
	assert.Equal(t, 60.0, result.Amount)
	assert.Equal(t, model.StatusPayoutPending, result.Status)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestProcessPayoutCompletesSale(t *testing.T) {
	service, mock := newTestService(t)

	// A 100.0 sale already has 60.0 completed; processing the remaining
	// 40.0 payout must flip the sale to completed.
	createdAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WithArgs("pyt_40").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}).
			AddRow("pyt_40", 40.0, model.StatusPayoutPending, "sale_100", "", createdAt))
	mock.ExpectExec("UPDATE payouts").
		WithArgs("pyt_40", 40.0, model.StatusPayoutCompleted, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE sales").
		WithArgs("sale_100").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSaleCompleted))
	mock.ExpectCommit()

	result, err := service.ProcessPayout(context.Background(), "pyt_40")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPayoutCompleted, result.Status)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestProcessPayoutNotFound(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WithArgs("pyt_missing").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}))
	mock.ExpectRollback()

	_, err := service.ProcessPayout(context.Background(), "pyt_missing")

	assert.Error(t, err)
	assert.Equal(t, apierror.ErrTransactionFailed, apierror.Code(err))
	assert.Equal(t, apierror.ErrNotFound, apierror.RootCode(err))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestDeletePayoutReconcilesSale(t *testing.T) {
	service, mock := newTestService(t)

	createdAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payout_id, amount, status, sale_id").
		WithArgs("pyt_123").
		WillReturnRows(sqlmock.NewRows([]string{"payout_id", "amount", "status", "sale_id", "adjustment_id", "created_at"}).
			AddRow("pyt_123", 100.0, model.StatusPayoutCompleted, "sale_100", "", createdAt))
	mock.ExpectExec("DELETE FROM payouts").
		WithArgs("pyt_123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE sales").
		WithArgs("sale_100").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusSalePending))
	mock.ExpectCommit()

	err := service.DeletePayout(context.Background(), "pyt_123")

	assert.NoError(t, err)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
