package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una app Fiber con el router completo sobre el store
// in-memory.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	customers := usecase.NewCustomerUseCase(store.Customers())
	products := usecase.NewProductUseCase(store.Products())
	orders := usecase.NewOrderUseCase(store.Customers(), store.Products(), store.Orders())
	stats := usecase.NewStatsUseCase(store.Stats())
	registry := usecase.NewRegistry(customers, products, orders, stats)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: customers,
		ProductUC:  products,
		OrderUC:    orders,
		StatsUC:    stats,
		Registry:   registry,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas REST
// ──────────────────────────────────────────────────────────────────────────────

func TestHello(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/hello", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, usecase.HelloMessage, body["hello"])
}

func TestCreateCustomerEndpoint(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name": "Alice", "email": "alice@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	// Un rechazo de validación también es HTTP 200: es payload del contrato,
	// no error de transporte.
	resp = doJSON(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name": "Alicia", "email": "alice@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already exists", body["message"])
}

func TestCreateCustomerEndpoint_CuerpoInvalido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCustomersEndpoint_Paginacion(t *testing.T) {
	app := buildTestApp()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]string{
			"name": "N", "email": email,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	decodeList := func(resp *http.Response) []any {
		t.Helper()
		defer resp.Body.Close()
		var out []any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	// Sin query params aplica la página por defecto.
	resp := doJSON(t, app, http.MethodGet, "/api/customers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(resp), 3)

	resp = doJSON(t, app, http.MethodGet, "/api/customers?limit=2&offset=1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(resp), 2)
}

func TestStatsEndpoint(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.EqualValues(t, 0, body["total_customers"])
}

func TestRestockEndpoint(t *testing.T) {
	app := buildTestApp()

	create := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "tinta", "price": "2.50", "stock": 3,
	})
	require.Equal(t, http.StatusOK, create.StatusCode)
	created := decodeBody(t, create)
	require.Equal(t, true, created["success"])

	resp := doJSON(t, app, http.MethodPost, "/api/products/restock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	updated, ok := body["updated_products"].([]any)
	require.True(t, ok)
	assert.Len(t, updated, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho por nombre de operación
// ──────────────────────────────────────────────────────────────────────────────

func TestExecuteEndpoint(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/execute", map[string]any{
		"operation": "createProduct",
		"payload":   map[string]any{"name": "Widget", "price": "9.99", "stock": 5},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Product created successfully", body["message"])
}

func TestExecuteEndpoint_OperacionDesconocida(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/execute", map[string]any{
		"operation": "noExiste",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
