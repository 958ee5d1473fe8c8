package validator

import "github.com/shopspring/decimal"

// Mensajes de rechazo de producto.
const (
	PriceMessage = "Price must be positive"
	StockMessage = "Stock cannot be negative"
)

// ValidPrice exige precio estrictamente positivo.
func ValidPrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

// ValidStock exige stock no negativo.
func ValidStock(stock int) bool {
	return stock >= 0
}
