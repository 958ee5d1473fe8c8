package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Price debe ser > 0 al crearse;
// Stock nunca baja de cero y solo lo incrementa el job de reabastecimiento.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
}
