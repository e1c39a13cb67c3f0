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

	"github.com/ledgerline/ledgerline/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	txnScope   // Transaction scope primitives
	customer   // Interface for customer-related operations
	sale       // Interface for sale-related operations
	payout     // Interface for payout-related operations
	adjustment // Interface for adjustment-related operations
}

// txnScope opens explicit units of work. The returned handle is threaded into
// every write-path store call so the atomicity boundary is visible at each
// call site.
type txnScope interface {
	BeginTxn(ctx context.Context) (*Txn, error)
}

// customer defines methods for handling customers.
type customer interface {
	CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) // Creates a new customer
	GetCustomerByID(ctx context.Context, id string) (*model.Customer, error)             // Retrieves a customer by ID
	GetAllCustomers(ctx context.Context, limit, offset int) ([]model.Customer, error)    // Retrieves all customers
	UpdateCustomer(ctx context.Context, customer *model.Customer) error                  // Updates a customer
	DeleteCustomer(ctx context.Context, id string) error                                 // Deletes a customer
}

// sale defines methods for handling sales. Write operations take the caller's
// transaction handle; reads run outside any scope.
type sale interface {
	InsertSale(ctx context.Context, txn *Txn, sale *model.Sale) error                  // Persists a new sale
	GetSale(ctx context.Context, id string) (*model.Sale, error)                       // Retrieves a sale by ID
	GetSaleForUpdate(ctx context.Context, txn *Txn, id string) (*model.Sale, error)    // Retrieves and row-locks a sale
	UpdateSaleTxn(ctx context.Context, txn *Txn, sale *model.Sale) error               // Updates a sale
	DeleteSaleTxn(ctx context.Context, txn *Txn, id string) error                      // Deletes a sale
	GetSalesByCustomer(ctx context.Context, customerID string) ([]model.Sale, error)   // Retrieves a customer's sales
	SaleExistsTxn(ctx context.Context, txn *Txn, id string) (bool, error)              // Checks a sale exists inside the scope
	ReconcileSaleStatus(ctx context.Context, txn *Txn, saleID string) (string, error)  // Recomputes a sale's status from its completed payouts
}

// payout defines methods for handling payouts.
type payout interface {
	InsertPayout(ctx context.Context, txn *Txn, payout *model.Payout) error             // Persists a new payout
	GetPayout(ctx context.Context, id string) (*model.Payout, error)                    // Retrieves a payout by ID
	GetPayoutForUpdate(ctx context.Context, txn *Txn, id string) (*model.Payout, error) // Retrieves and row-locks a payout
	UpdatePayoutTxn(ctx context.Context, txn *Txn, payout *model.Payout) error          // Updates a payout
	DeletePayoutTxn(ctx context.Context, txn *Txn, id string) error                     // Deletes a payout
	GetPayoutsForSales(ctx context.Context, saleIDs []string) ([]model.Payout, error)   // Retrieves payouts referencing the given sales
}

// adjustment defines methods for handling adjustments.
type adjustment interface {
	CreateAdjustment(ctx context.Context, adjustment model.Adjustment) (model.Adjustment, error)   // Creates a new adjustment
	GetAdjustmentByID(ctx context.Context, id string) (*model.Adjustment, error)                   // Retrieves an adjustment by ID
	GetAllAdjustments(ctx context.Context, limit, offset int) ([]model.Adjustment, error)          // Retrieves all adjustments
	UpdateAdjustment(ctx context.Context, adjustment *model.Adjustment) error                      // Updates an adjustment
	DeleteAdjustment(ctx context.Context, id string) error                                         // Deletes an adjustment
	GetAdjustmentsForCustomer(ctx context.Context, customerID string) ([]model.Adjustment, error)  // Retrieves global plus customer-scoped adjustments
	AdjustmentExistsTxn(ctx context.Context, txn *Txn, id string) (bool, error)                    // Checks an adjustment exists inside the scope
}
