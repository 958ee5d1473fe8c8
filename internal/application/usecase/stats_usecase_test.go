package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

func TestTotals_StoreVacio(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewStatsUseCase(store.Stats())

	totals, err := uc.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, totals.TotalCustomers)
	assert.Equal(t, 0, totals.TotalOrders)
	assert.True(t, totals.TotalRevenue.IsZero(), "sin órdenes el revenue es cero")
}

func TestTotals_ReflejanElStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	customers := usecase.NewCustomerUseCase(store.Customers())
	products := usecase.NewProductUseCase(store.Products())
	orders := usecase.NewOrderUseCase(store.Customers(), store.Products(), store.Orders())
	uc := usecase.NewStatsUseCase(store.Stats())

	customer, err := customers.Create(ctx, dto.CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	mkOrder := func(price string) {
		p, err := products.Create(ctx, dto.CreateProductRequest{Name: "P", Price: decimal.RequireFromString(price), Stock: 1})
		require.NoError(t, err)
		require.True(t, p.Success)
		o, err := orders.Create(ctx, dto.CreateOrderRequest{
			CustomerID: customer.Customer.ID,
			ProductIDs: []string{p.Product.ID},
		})
		require.NoError(t, err)
		require.True(t, o.Success)
	}
	mkOrder("15.50")
	mkOrder("4.00")

	totals, err := uc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.TotalCustomers)
	assert.Equal(t, 2, totals.TotalOrders)
	assert.True(t, totals.TotalRevenue.Equal(decimal.RequireFromString("19.50")),
		"revenue esperado 19.50, fue %s", totals.TotalRevenue)
}
