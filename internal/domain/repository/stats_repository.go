package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas agregadas de solo lectura.
// Las implementaciones no cachean: cada llamada refleja el store en ese momento.
type StatsRepository interface {
	TotalCustomers(ctx context.Context) (int, error)
	TotalOrders(ctx context.Context) (int, error)
	// TotalRevenue suma TotalAmount de todas las órdenes; cero si no hay órdenes.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
