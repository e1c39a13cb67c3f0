package model

type CreateSale struct {
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	CustomerID string  `json:"customer_id"`
}

type UpdateSale struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}
