package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Store es el respaldo in-memory de todos los gateways del CRM. Se usa en tests
// y en modo desarrollo sin PostgreSQL. Guarda copias por valor, protege los
// mapas con un RWMutex y conserva el orden de inserción para los listados.
// Cada gateway se obtiene como vista: Customers(), Products(), Orders(), Stats().
type Store struct {
	mu        sync.RWMutex
	customers map[string]entity.Customer
	products  map[string]entity.Product
	orders    map[string]entity.Order

	customerIDs []string
	productIDs  []string
	orderIDs    []string
}

// NewStore construye el store vacío.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]entity.Customer),
		products:  make(map[string]entity.Product),
		orders:    make(map[string]entity.Order),
	}
}

// Customers devuelve la vista CustomerRepository del store.
func (s *Store) Customers() repository.CustomerRepository { return &customerStore{s} }

// Products devuelve la vista ProductRepository del store.
func (s *Store) Products() repository.ProductRepository { return &productStore{s} }

// Orders devuelve la vista OrderRepository del store.
func (s *Store) Orders() repository.OrderRepository { return &orderStore{s} }

// Stats devuelve la vista StatsRepository del store.
func (s *Store) Stats() repository.StatsRepository { return &statsStore{s} }

// ── CustomerRepository ───────────────────────────────────────────────────────

type customerStore struct{ s *Store }

var _ repository.CustomerRepository = (*customerStore)(nil)

// Create persiste un cliente. Email repetido devuelve domain.ErrDuplicate, igual
// que el constraint único de PostgreSQL.
func (r *customerStore) Create(ctx context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == customer.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.customers[customer.ID] = *customer
	r.s.customerIDs = append(r.s.customerIDs, customer.ID)
	return nil
}

func (r *customerStore) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *customerStore) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *customerStore) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Customer
	for i := offset; i < len(r.s.customerIDs) && len(out) < limit; i++ {
		c := r.s.customers[r.s.customerIDs[i]]
		out = append(out, &c)
	}
	return out, nil
}

// ── ProductRepository ────────────────────────────────────────────────────────

type productStore struct{ s *Store }

var _ repository.ProductRepository = (*productStore)(nil)

func (r *productStore) Create(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = *product
	r.s.productIDs = append(r.s.productIDs, product.ID)
	return nil
}

func (r *productStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListByIDs resuelve los productos existentes entre los IDs pedidos. Colapsa
// duplicados, como un IN de SQL.
func (r *productStore) ListByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]bool, len(ids))
	var out []*entity.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.s.products[id]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *productStore) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for _, id := range r.s.productIDs {
		if p := r.s.products[id]; p.Stock < threshold {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *productStore) UpdateStock(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = product.Stock
	r.s.products[product.ID] = p
	return nil
}

func (r *productStore) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for i := offset; i < len(r.s.productIDs) && len(out) < limit; i++ {
		p := r.s.products[r.s.productIDs[i]]
		out = append(out, &p)
	}
	return out, nil
}

// ── OrderRepository ──────────────────────────────────────────────────────────

type orderStore struct{ s *Store }

var _ repository.OrderRepository = (*orderStore)(nil)

func (r *orderStore) Create(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *order
	cp.ProductIDs = append([]string(nil), order.ProductIDs...)
	r.s.orders[order.ID] = cp
	r.s.orderIDs = append(r.s.orderIDs, order.ID)
	return nil
}

func (r *orderStore) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *orderStore) ListSince(ctx context.Context, since time.Time) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Order
	for _, id := range r.s.orderIDs {
		if o := r.s.orders[id]; !o.OrderDate.Before(since) {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *orderStore) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Order
	for i := offset; i < len(r.s.orderIDs) && len(out) < limit; i++ {
		out = append(out, copyOrder(r.s.orders[r.s.orderIDs[i]]))
	}
	return out, nil
}

func copyOrder(o entity.Order) *entity.Order {
	o.ProductIDs = append([]string(nil), o.ProductIDs...)
	return &o
}

// ── StatsRepository ──────────────────────────────────────────────────────────

type statsStore struct{ s *Store }

var _ repository.StatsRepository = (*statsStore)(nil)

func (r *statsStore) TotalCustomers(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.customers), nil
}

func (r *statsStore) TotalOrders(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.orders), nil
}

func (r *statsStore) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, o := range r.s.orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}
