package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// Create persiste la orden y sus asociaciones a productos de forma atómica.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListSince devuelve las órdenes con OrderDate >= since (scan de recordatorios).
	ListSince(ctx context.Context, since time.Time) ([]*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
