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
package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ledgerline/ledgerline/model"
)

// The editable sale statuses. Completion is derived from payouts and can
// never be requested by a client.
var editableSaleStatuses = []interface{}{
	model.StatusSaleActive,
	model.StatusSalePending,
	model.StatusSaleIncomplete,
	model.StatusSaleDisputed,
}

// The payout statuses a client may set. 'completed' only happens through
// the process endpoint.
var editablePayoutStatuses = []interface{}{
	model.StatusPayoutPending,
	model.StatusPayoutFailed,
}

func (c *CreateCustomer) ValidateCreateCustomer() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Surname, validation.Required),
	)
}

func (u *UpdateCustomer) ValidateUpdateCustomer() error {
	if u.Name == nil && u.Surname == nil {
		return errors.New("at least one of name or surname is required")
	}
	return validation.ValidateStruct(u,
		validation.Field(&u.Name, validation.NilOrNotEmpty),
		validation.Field(&u.Surname, validation.NilOrNotEmpty),
	)
}

func (s *CreateSale) ValidateCreateSale() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&s.CustomerID, validation.Required),
		validation.Field(&s.Status, validation.In(editableSaleStatuses...)),
	)
}

func (u *UpdateSale) ValidateUpdateSale() error {
	if u.Amount == nil && u.Status == nil {
		return errors.New("at least one of amount or status is required")
	}
	return validation.ValidateStruct(u,
		validation.Field(&u.Amount, validation.Min(0.0).Exclusive()),
		validation.Field(&u.Status, validation.In(editableSaleStatuses...)),
	)
}

func (p *CreatePayout) ValidateCreatePayout() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&p.SaleID, validation.Required),
		validation.Field(&p.Status, validation.In(editablePayoutStatuses...)),
	)
}

func (u *UpdatePayout) ValidateUpdatePayout() error {
	if u.Amount == nil && u.Status == nil && u.AdjustmentID == nil {
		return errors.New("at least one of amount, status or adjustment_id is required")
	}
	return validation.ValidateStruct(u,
		validation.Field(&u.Amount, validation.Min(0.0).Exclusive()),
		validation.Field(&u.Status, validation.In(editablePayoutStatuses...)),
	)
}

func (a *CreateAdjustment) ValidateCreateAdjustment() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Amount, validation.Required),
		validation.Field(&a.Reason, validation.Required),
	)
}

func (u *UpdateAdjustment) ValidateUpdateAdjustment() error {
	if u.Amount == nil && u.Reason == nil {
		return errors.New("at least one of amount or reason is required")
	}
	return validation.ValidateStruct(u,
		validation.Field(&u.Reason, validation.NilOrNotEmpty),
	)
}

func (c *CreateCustomer) ToCustomer() model.Customer {
	return model.Customer{
		Name:    c.Name,
		Surname: c.Surname,
	}
}

func (u *UpdateCustomer) ToPatch() model.CustomerPatch {
	return model.CustomerPatch{
		Name:    u.Name,
		Surname: u.Surname,
	}
}

func (s *CreateSale) ToSale() model.Sale {
	return model.Sale{
		Amount:     s.Amount,
		Status:     s.Status,
		CustomerID: s.CustomerID,
	}
}

func (u *UpdateSale) ToPatch() model.SalePatch {
	return model.SalePatch{
		Amount: u.Amount,
		Status: u.Status,
	}
}

func (p *CreatePayout) ToPayout() model.Payout {
	return model.Payout{
		Amount:       p.Amount,
		Status:       p.Status,
		SaleID:       p.SaleID,
		AdjustmentID: p.AdjustmentID,
	}
}

func (u *UpdatePayout) ToPatch() model.PayoutPatch {
	return model.PayoutPatch{
		Amount:       u.Amount,
		Status:       u.Status,
		AdjustmentID: u.AdjustmentID,
	}
}

func (a *CreateAdjustment) ToAdjustment() model.Adjustment {
	return model.Adjustment{
		Amount:     a.Amount,
		Reason:     a.Reason,
		CustomerID: a.CustomerID,
	}
}

func (u *UpdateAdjustment) ToPatch() model.AdjustmentPatch {
	return model.AdjustmentPatch{
		Amount: u.Amount,
		Reason: u.Reason,
	}
}
