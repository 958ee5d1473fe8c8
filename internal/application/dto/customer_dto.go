package dto

import "time"

// CreateCustomerRequest entrada de createCustomer.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse representación de salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerResult resultado de createCustomer: rechazo de validación o cliente creado.
type CustomerResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// BulkCreateCustomersRequest entrada de bulkCreateCustomers (orden significativo).
type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers"`
}

// BulkCustomersResult resultado de bulkCreateCustomers: commit parcial por ítem.
// Errors lleva un mensaje por ítem rechazado, en el orden de entrada.
type BulkCustomersResult struct {
	CreatedCustomers []*CustomerResponse `json:"created_customers"`
	Errors           []string            `json:"errors"`
}
