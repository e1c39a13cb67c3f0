package model

import "time"

// Adjustment is a standalone signed balance correction. CustomerID scopes the
// adjustment to one customer; when empty it applies globally.
type Adjustment struct {
	ID           int64     `json:"-"`
	AdjustmentID string    `json:"adjustment_id"`
	Amount       float64   `json:"amount"`
	Reason       string    `json:"reason,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdjustmentPatch carries the client-updatable adjustment fields.
type AdjustmentPatch struct {
	Amount *float64 `json:"amount"`
	Reason *string  `json:"reason"`
}
