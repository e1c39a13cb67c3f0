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

// CreateAdjustment records a manual correction. An adjustment with an empty
// CustomerID is global and applies to every customer's balance.
func (l *Ledgerline) CreateAdjustment(ctx context.Context, adjustment model.Adjustment) (model.Adjustment, error) {
	if adjustment.CustomerID != "" {
		if _, err := l.datasource.GetCustomerByID(ctx, adjustment.CustomerID); err != nil {
			return model.Adjustment{}, err
		}
	}
	return l.datasource.CreateAdjustment(ctx, adjustment)
}

func (l *Ledgerline) GetAdjustment(ctx context.Context, id string) (*model.Adjustment, error) {
	return l.datasource.GetAdjustmentByID(ctx, id)
}

func (l *Ledgerline) GetAllAdjustments(ctx context.Context, limit, offset int) ([]model.Adjustment, error) {
	return l.datasource.GetAllAdjustments(ctx, limit, offset)
}

func (l *Ledgerline) UpdateAdjustment(ctx context.Context, id string, patch model.AdjustmentPatch) (*model.Adjustment, error) {
	adjustment, err := l.datasource.GetAdjustmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		adjustment.Amount = *patch.Amount
	}
	if patch.Reason != nil {
		adjustment.Reason = *patch.Reason
	}

	if err := l.datasource.UpdateAdjustment(ctx, adjustment); err != nil {
		return nil, err
	}

	return adjustment, nil
}

func (l *Ledgerline) DeleteAdjustment(ctx context.Context, id string) error {
	return l.datasource.DeleteAdjustment(ctx, id)
}
