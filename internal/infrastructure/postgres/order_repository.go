package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Necesita el pool (no un Querier)
// porque Create abre su propia transacción para la orden y sus asociaciones.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador con el pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste la orden y sus asociaciones a productos en una transacción:
// o entra todo o no entra nada.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, order_date, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.CustomerID, order.OrderDate, order.TotalAmount, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, productID := range order.ProductIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_products (order_id, product_id)
			VALUES ($1, $2)`,
			order.ID, productID,
		)
		if err != nil {
			return fmt.Errorf("insert order product: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con sus productos; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadProducts(ctx, []*entity.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListSince devuelve las órdenes con OrderDate >= since (scan de recordatorios).
func (r *OrderRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, created_at
		FROM orders WHERE order_date >= $1 ORDER BY order_date`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list orders since: %w", err)
	}
	defer rows.Close()
	list, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadProducts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// List lista órdenes con paginación, en orden de creación.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, created_at
		FROM orders ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadProducts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadProducts completa ProductIDs de cada orden con una sola consulta.
func (r *OrderRepo) loadProducts(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id FROM order_products WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("list order products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID, productID string
		if err := rows.Scan(&orderID, &productID); err != nil {
			return fmt.Errorf("scan order product: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.ProductIDs = append(o.ProductIDs, productID)
		}
	}
	return rows.Err()
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
