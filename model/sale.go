package model

import "time"

const (
	StatusSaleActive     = "active"
	StatusSalePending    = "pending"
	StatusSaleIncomplete = "incomplete"
	StatusSaleDisputed   = "disputed"
	StatusSaleCompleted  = "completed"
)

// Sale is a billable obligation owed by a customer. Its status is owned by
// the reconciler: only the completed-payout sum moves a sale to "completed",
// never a client update.
type Sale struct {
	ID         int64     `json:"-"`
	SaleID     string    `json:"sale_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SalePatch carries the client-updatable sale fields. Nil means "leave as is".
type SalePatch struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}
