package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra. TotalAmount es un snapshot: se calcula
// una sola vez con los precios vigentes al crear la orden y no se recalcula.
type Order struct {
	ID          string
	CustomerID  string
	ProductIDs  []string // al menos uno, sin duplicados
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}
