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

func (d Datasource) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	customer.CustomerID = model.GenerateUUIDWithSuffix("cst")
	customer.CreatedAt = time.Now()

	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO customers (customer_id, name, surname, created_at)
		VALUES ($1, $2, $3, $4)
	`, customer.CustomerID, customer.Name, customer.Surname, customer.CreatedAt)

	if err != nil {
		pqErr, ok := err.(*pq.Error)
		if ok && pqErr.Code.Name() == "unique_violation" {
			return model.Customer{}, apierror.NewAPIError(apierror.ErrConflict, "Customer with this ID already exists", err)
		}
		return model.Customer{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create customer", err)
	}

	return customer, nil
}

func (d Datasource) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	customer := model.Customer{}

	err := d.Conn.QueryRowContext(ctx, `
		SELECT customer_id, name, surname, created_at
		FROM customers
		WHERE customer_id = $1
	`, id).Scan(&customer.CustomerID, &customer.Name, &customer.Surname, &customer.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Customer with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve customer", err)
	}

	return &customer, nil
}

func (d Datasource) GetAllCustomers(ctx context.Context, limit, offset int) ([]model.Customer, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT customer_id, name, surname, created_at
		FROM customers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve customers", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		customer := model.Customer{}
		err = rows.Scan(&customer.CustomerID, &customer.Name, &customer.Surname, &customer.CreatedAt)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan customer data", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Error occurred while iterating over customers", err)
	}

	return customers, nil
}

func (d Datasource) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE customers
		SET name = $2, surname = $3
		WHERE customer_id = $1
	`, customer.CustomerID, customer.Name, customer.Surname)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update customer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Customer with ID '%s' not found", customer.CustomerID), nil)
	}

	return nil
}

func (d Datasource) DeleteCustomer(ctx context.Context, id string) error {
	result, err := d.Conn.ExecContext(ctx, `
		DELETE FROM customers WHERE customer_id = $1
	`, id)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to delete customer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Customer with ID '%s' not found", id), nil)
	}

	return nil
}
