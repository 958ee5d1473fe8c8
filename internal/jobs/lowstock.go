package jobs

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// LowStockRestock dispara el reabastecimiento de productos con stock bajo y
// anota el resultado en su log: el resumen y una línea por producto actualizado.
type LowStockRestock struct {
	products *usecase.ProductUseCase
	sink     Sink
}

var _ Job = (*LowStockRestock)(nil)

// NewLowStockRestock construye el job.
func NewLowStockRestock(products *usecase.ProductUseCase, sink Sink) *LowStockRestock {
	return &LowStockRestock{products: products, sink: sink}
}

func (j *LowStockRestock) Name() string { return "low-stock-restock" }

// Run ejecuta una corrida de reabastecimiento.
func (j *LowStockRestock) Run(ctx context.Context) error {
	result, err := j.products.RestockLowStock(ctx)
	if err != nil {
		_ = j.sink.Append(fmt.Sprintf("restock failed: %v", err))
		return err
	}
	if err := j.sink.Append(result.Message); err != nil {
		return err
	}
	for _, p := range result.UpdatedProducts {
		if err := j.sink.Append(fmt.Sprintf("%s: stock %d", p.Name, p.Stock)); err != nil {
			return err
		}
	}
	for _, msg := range result.Errors {
		if err := j.sink.Append(fmt.Sprintf("restock error: %s", msg)); err != nil {
			return err
		}
	}
	return nil
}
