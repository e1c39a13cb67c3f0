package model

type CreatePayout struct {
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	SaleID       string  `json:"sale_id"`
	AdjustmentID string  `json:"adjustment_id"`
}

type UpdatePayout struct {
	Amount       *float64 `json:"amount"`
	Status       *string  `json:"status"`
	AdjustmentID *string  `json:"adjustment_id"`
}
