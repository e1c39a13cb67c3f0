package model

import "time"

type Customer struct {
	ID         int64     `json:"-"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerPatch carries the client-updatable customer fields.
type CustomerPatch struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
}
