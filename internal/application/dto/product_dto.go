package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada de createProduct. Stock ausente = 0.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductResult resultado de createProduct.
type ProductResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Product *ProductResponse `json:"product,omitempty"`
}

// RestockResult resultado de updateLowStockProducts. Best-effort: Errors lleva
// los productos que no pudieron persistirse sin abortar el resto.
type RestockResult struct {
	Success         bool               `json:"success"`
	Message         string             `json:"message"`
	UpdatedProducts []*ProductResponse `json:"updated_products"`
	Errors          []string           `json:"errors,omitempty"`
}
