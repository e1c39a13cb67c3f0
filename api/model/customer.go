package model

type CreateCustomer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type UpdateCustomer struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
}
