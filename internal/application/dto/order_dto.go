package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada de createOrder. OrderDate ausente = ahora.
type CreateOrderRequest struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

// OrderResponse representación de salida de una orden.
type OrderResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	ProductIDs  []string        `json:"product_ids"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderResult resultado de createOrder.
type OrderResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Order   *OrderResponse `json:"order,omitempty"`
}

// StatsResponse totales agregados del CRM (lectura en vivo, sin caché).
type StatsResponse struct {
	TotalCustomers int             `json:"total_customers"`
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}
