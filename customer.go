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

	"github.com/ledgerline/ledgerline/model"
)

func (l *Ledgerline) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	return l.datasource.CreateCustomer(ctx, customer)
}

func (l *Ledgerline) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return l.datasource.GetCustomerByID(ctx, id)
}

func (l *Ledgerline) GetAllCustomers(ctx context.Context, limit, offset int) ([]model.Customer, error) {
	return l.datasource.GetAllCustomers(ctx, limit, offset)
}

func (l *Ledgerline) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	customer, err := l.datasource.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Surname != nil {
		customer.Surname = *patch.Surname
	}

	if err := l.datasource.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (l *Ledgerline) DeleteCustomer(ctx context.Context, id string) error {
	return l.datasource.DeleteCustomer(ctx, id)
}
