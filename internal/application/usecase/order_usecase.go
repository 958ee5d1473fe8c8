package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// OrderUseCase mutación de órdenes: validación encadenada y total snapshot.
type OrderUseCase struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) *OrderUseCase {
	return &OrderUseCase{customers: customers, products: products, orders: orders}
}

// Create crea una orden. La validación corta en el primer rechazo, en este orden:
// cliente existente, lista de productos no vacía, al menos un producto resuelto,
// y tantos productos resueltos como IDs pedidos (esto último atrapa a la vez IDs
// desconocidos e IDs duplicados, porque el store colapsa duplicados al resolver).
// TotalAmount es la suma de los precios resueltos en este momento y no se
// recalcula después.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResult, error) {
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return &dto.OrderResult{Success: false, Message: "Invalid customer ID"}, nil
	}
	if len(in.ProductIDs) == 0 {
		return &dto.OrderResult{Success: false, Message: "At least one product must be selected"}, nil
	}
	products, err := uc.products.ListByIDs(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &dto.OrderResult{Success: false, Message: "No valid products found"}, nil
	}
	if len(products) != len(in.ProductIDs) {
		return &dto.OrderResult{Success: false, Message: "One or more product IDs are invalid"}, nil
	}

	total := decimal.Zero
	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		productIDs = append(productIDs, p.ID)
	}
	orderDate := time.Now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.Order{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		ProductIDs:  productIDs,
		OrderDate:   orderDate,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return &dto.OrderResult{
		Success: true,
		Message: "Order created successfully",
		Order:   toOrderResponse(order),
	}, nil
}

// List lista órdenes con paginación.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// ListSince devuelve las órdenes con fecha dentro de la ventana hacia atrás dada
// (scan de recordatorios).
func (uc *OrderUseCase) ListSince(ctx context.Context, since time.Time) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// CustomerEmail resuelve el email del cliente de una orden (recordatorios).
func (uc *OrderUseCase) CustomerEmail(ctx context.Context, customerID string) (string, error) {
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		return "", nil
	}
	return customer.Email, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		ProductIDs:  o.ProductIDs,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
	}
}
