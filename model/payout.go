package model

import "time"

const (
	StatusPayoutPending   = "pending"
	StatusPayoutCompleted = "completed"
	StatusPayoutFailed    = "failed"
)

// Payout is a partial or full settlement applied against a sale. The
// "completed" status is only reachable through ProcessPayout.
type Payout struct {
	ID           int64     `json:"-"`
	PayoutID     string    `json:"payout_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	SaleID       string    `json:"sale_id"`
	AdjustmentID string    `json:"adjustment_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PayoutPatch carries the client-updatable payout fields. Nil means "leave
// as is".
type PayoutPatch struct {
	Amount       *float64 `json:"amount"`
	Status       *string  `json:"status"`
	AdjustmentID *string  `json:"adjustment_id"`
}
