package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListByIDs resuelve los productos existentes entre los IDs pedidos.
	// IDs desconocidos simplemente no aparecen en el resultado.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con stock por debajo del umbral.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// UpdateStock persiste el stock actual del producto.
	UpdateStock(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
