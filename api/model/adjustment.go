package model

type CreateAdjustment struct {
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
	CustomerID string  `json:"customer_id"`
}

type UpdateAdjustment struct {
	Amount *float64 `json:"amount"`
	Reason *string  `json:"reason"`
}
