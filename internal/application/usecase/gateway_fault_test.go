package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

var errStoreDown = errors.New("connection reset")

// ──────────────────────────────────────────────────────────────────────────────
// Stubs con fallas inyectadas: delegan al store in-memory salvo en el punto
// de falla.
// ──────────────────────────────────────────────────────────────────────────────

// flakyCustomerRepo falla Create para un email puntual.
type flakyCustomerRepo struct {
	repository.CustomerRepository
	failEmail string
}

func (r *flakyCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.Email == r.failEmail {
		return errStoreDown
	}
	return r.CustomerRepository.Create(ctx, c)
}

// staleCustomerRepo simula la carrera entre el pre-chequeo y el insert: el
// lookup por email nunca ve al duplicado, pero el constraint único del store sí.
type staleCustomerRepo struct {
	repository.CustomerRepository
}

func (r *staleCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}

// flakyProductRepo falla UpdateStock para un producto puntual.
type flakyProductRepo struct {
	repository.ProductRepository
	failName string
}

func (r *flakyProductRepo) UpdateStock(ctx context.Context, p *entity.Product) error {
	if p.Name == r.failName {
		return errStoreDown
	}
	return r.ProductRepository.UpdateStock(ctx, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallas del store en operaciones por lote
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkCreateCustomers_FallaDelStoreNoAbortaElLote(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewCustomerUseCase(&flakyCustomerRepo{
		CustomerRepository: store.Customers(),
		failEmail:          "b@example.com",
	})

	// El ítem 2 falla al persistir; los demás deben entrar igual y la falla
	// queda como "<email>: <err>" en su posición.
	result, err := uc.BulkCreate(ctx, dto.BulkCreateCustomersRequest{Customers: []dto.CreateCustomerRequest{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	}})
	require.NoError(t, err)
	require.Len(t, result.CreatedCustomers, 2)
	assert.Equal(t, "a@example.com", result.CreatedCustomers[0].Email)
	assert.Equal(t, "c@example.com", result.CreatedCustomers[1].Email)
	require.Equal(t, []string{"b@example.com: connection reset"}, result.Errors)

	total, err := store.Stats().TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestCreateCustomer_DuplicadoEnElInsert(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Customers().Create(ctx, &entity.Customer{
		ID:    "c-1",
		Name:  "Alice",
		Email: "alice@example.com",
	}))

	// El pre-chequeo no ve al duplicado; el constraint del store lo atrapa en
	// el insert y el rechazo reportado es el mismo.
	uc := usecase.NewCustomerUseCase(&staleCustomerRepo{CustomerRepository: store.Customers()})
	result, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Alicia", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Email already exists", result.Message)
	assert.Nil(t, result.Customer)

	total, err := store.Stats().TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestRestockLowStock_FallaDeUnProductoNoAbortaElResto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed := usecase.NewProductUseCase(store.Products())
	for _, p := range []struct {
		name  string
		stock int
	}{
		{"tinta", 3},
		{"papel", 5},
		{"toner", 12},
	} {
		created, err := seed.Create(ctx, dto.CreateProductRequest{
			Name: p.name, Price: decimal.NewFromInt(2), Stock: p.stock,
		})
		require.NoError(t, err)
		require.True(t, created.Success)
	}

	uc := usecase.NewProductUseCase(&flakyProductRepo{
		ProductRepository: store.Products(),
		failName:          "papel",
	})
	result, err := uc.RestockLowStock(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.UpdatedProducts, 1)
	assert.Equal(t, "tinta", result.UpdatedProducts[0].Name)
	assert.Equal(t, 13, result.UpdatedProducts[0].Stock)
	require.Equal(t, []string{"papel: connection reset"}, result.Errors)
	assert.Regexp(t, `^1 products restocked at `, result.Message)
}
