package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jhoicas/crm-api/internal/domain"
)

// Nombres de operación del registro de despacho.
const (
	OpHello                  = "hello"
	OpCreateCustomer         = "createCustomer"
	OpBulkCreateCustomers    = "bulkCreateCustomers"
	OpCreateProduct          = "createProduct"
	OpCreateOrder            = "createOrder"
	OpUpdateLowStockProducts = "updateLowStockProducts"
	OpTotalStats             = "totalStats"
)

// HelloMessage respuesta del eco trivial (sonda de liveness del heartbeat).
const HelloMessage = "Hello, CRM is live!"

// HandlerFunc firma común de las operaciones despachables. El payload llega como
// JSON crudo; cada operación lo decodifica a su bundle tipado.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Registry tabla de despacho: operación por nombre en vez de jerarquías de
// resolvers. La capa de transporte y los jobs son solo llamadores de la tabla.
type Registry struct {
	handlers map[string]HandlerFunc
}

// NewRegistry construye la tabla con todas las operaciones del CRM registradas.
func NewRegistry(
	customers *CustomerUseCase,
	products *ProductUseCase,
	orders *OrderUseCase,
	stats *StatsUseCase,
) *Registry {
	r := &Registry{handlers: make(map[string]HandlerFunc)}

	r.Register(OpHello, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return map[string]string{"hello": HelloMessage}, nil
	})
	r.Register(OpCreateCustomer, typed(customers.Create))
	r.Register(OpBulkCreateCustomers, typed(customers.BulkCreate))
	r.Register(OpCreateProduct, typed(products.Create))
	r.Register(OpCreateOrder, typed(orders.Create))
	r.Register(OpUpdateLowStockProducts, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return products.RestockLowStock(ctx)
	})
	r.Register(OpTotalStats, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return stats.Totals(ctx)
	})
	return r
}

// Register registra (o reemplaza) una operación por nombre.
func (r *Registry) Register(op string, h HandlerFunc) {
	r.handlers[op] = h
}

// Call despacha una operación por nombre. Operación desconocida devuelve
// domain.ErrNotFound.
func (r *Registry) Call(ctx context.Context, op string, payload json.RawMessage) (any, error) {
	h, ok := r.handlers[op]
	if !ok {
		return nil, fmt.Errorf("operación %q: %w", op, domain.ErrNotFound)
	}
	return h(ctx, payload)
}

// Operations devuelve los nombres registrados, ordenados.
func (r *Registry) Operations() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// typed adapta una operación con request tipado a HandlerFunc decodificando el
// payload JSON. Payload vacío equivale al request con valores cero.
func typed[Req, Res any](fn func(context.Context, Req) (Res, error)) HandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var in Req
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
		}
		return fn(ctx, in)
	}
}
