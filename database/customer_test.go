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

package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/ledgerline/ledgerline/model"
)

func TestCreateCustomer_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	customer := model.Customer{Name: gofakeit.FirstName(), Surname: gofakeit.LastName()}

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(sqlmock.AnyArg(), customer.Name, customer.Surname, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := ds.CreateCustomer(context.Background(), customer)
	assert.NoError(t, err)
	assert.Contains(t, created.CustomerID, "cst_")
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Second)
}

func TestCreateCustomer_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO customers").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = ds.CreateCustomer(context.Background(), model.Customer{Name: "Ada", Surname: "Obi"})
	assert.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrConflict, apiErr.Code)
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT customer_id, name, surname, created_at").
		WithArgs("cst_missing").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "name", "surname", "created_at"}))

	_, err = ds.GetCustomerByID(context.Background(), "cst_missing")
	assert.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
}

func TestGetAllCustomers(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	now := time.Now()
	mock.ExpectQuery("SELECT customer_id, name, surname, created_at").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "name", "surname", "created_at"}).
			AddRow("cst_1", "Ada", "Obi", now).
			AddRow("cst_2", "Chike", "Eze", now))

	customers, err := ds.GetAllCustomers(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("UPDATE customers").
		WithArgs("cst_missing", "Ada", "Obi").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ds.UpdateCustomer(context.Background(), &model.Customer{CustomerID: "cst_missing", Name: "Ada", Surname: "Obi"})
	assert.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
}
