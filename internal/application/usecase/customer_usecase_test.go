package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

func newCustomerUC() (*usecase.CustomerUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewCustomerUseCase(store.Customers()), store
}

func TestCreateCustomer_OK(t *testing.T) {
	uc, _ := newCustomerUC()
	result, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+573001234567",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "Customer created successfully", result.Message)
	require.NotNil(t, result.Customer)
	assert.NotEmpty(t, result.Customer.ID)
	assert.Equal(t, "alice@example.com", result.Customer.Email)
}

func TestCreateCustomer_SinTelefono(t *testing.T) {
	uc, _ := newCustomerUC()
	result, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.True(t, result.Success, "teléfono ausente siempre se acepta")
}

func TestCreateCustomer_EmailDuplicado(t *testing.T) {
	uc, store := newCustomerUC()
	ctx := context.Background()
	first, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Alicia", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Email already exists", second.Message)
	assert.Nil(t, second.Customer)

	// El segundo cliente no debe haberse persistido
	total, err := store.Stats().TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCreateCustomer_TelefonoInvalido(t *testing.T) {
	uc, store := newCustomerUC()
	ctx := context.Background()
	result, err := uc.Create(ctx, dto.CreateCustomerRequest{
		Name:  "Carol",
		Email: "carol@example.com",
		Phone: "12345",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid phone format. Use +1234567890 or 123-456-7890.", result.Message)

	total, err := store.Stats().TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestCreateCustomer_CamposRequeridos(t *testing.T) {
	uc, _ := newCustomerUC()
	result, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Email: "x@example.com"})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestBulkCreateCustomers_CommitParcial(t *testing.T) {
	uc, store := newCustomerUC()
	ctx := context.Background()

	// Ítem 2 tiene teléfono inválido; el resto debe entrar igual.
	result, err := uc.BulkCreate(ctx, dto.BulkCreateCustomersRequest{Customers: []dto.CreateCustomerRequest{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com", Phone: "not-a-phone"},
		{Name: "C", Email: "c@example.com", Phone: "123-456-7890"},
	}})
	require.NoError(t, err)
	require.Len(t, result.CreatedCustomers, 2)
	assert.Equal(t, "a@example.com", result.CreatedCustomers[0].Email)
	assert.Equal(t, "c@example.com", result.CreatedCustomers[1].Email)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Invalid phone format for b@example.com", result.Errors[0])

	total, err := store.Stats().TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestBulkCreateCustomers_DuplicadoDentroDelLote(t *testing.T) {
	uc, _ := newCustomerUC()

	// Los ítems posteriores observan los efectos de los anteriores: el mismo
	// email dos veces en un lote entra la primera vez y se rechaza la segunda.
	result, err := uc.BulkCreate(context.Background(), dto.BulkCreateCustomersRequest{Customers: []dto.CreateCustomerRequest{
		{Name: "A", Email: "dup@example.com"},
		{Name: "A otra vez", Email: "dup@example.com"},
	}})
	require.NoError(t, err)
	require.Len(t, result.CreatedCustomers, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Email already exists: dup@example.com", result.Errors[0])
}

func TestBulkCreateCustomers_ErroresEnOrdenDeEntrada(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()
	seed, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Seed", Email: "seed@example.com"})
	require.NoError(t, err)
	require.True(t, seed.Success)

	result, err := uc.BulkCreate(ctx, dto.BulkCreateCustomersRequest{Customers: []dto.CreateCustomerRequest{
		{Name: "X", Email: "seed@example.com"},      // duplicado
		{Name: "Y", Email: "y@example.com"},         // ok
		{Name: "Z", Email: "z@example.com", Phone: "bad"}, // teléfono inválido
		{Name: "Sin email"},                         // malformado
	}})
	require.NoError(t, err)
	require.Len(t, result.CreatedCustomers, 1)
	require.Equal(t, []string{
		"Email already exists: seed@example.com",
		"Invalid phone format for z@example.com",
		"Unknown: name and email are required",
	}, result.Errors)
}
