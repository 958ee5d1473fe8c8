package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	StatsUC    *usecase.StatsUseCase
	Registry   *usecase.Registry
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Eco trivial: objetivo de la sonda del heartbeat
	api.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"hello": usecase.HelloMessage})
	})

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Post("/bulk", customerHandler.BulkCreate)
	customers.Get("/", customerHandler.List)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Post("/restock", productHandler.Restock)
	products.Get("/", productHandler.List)

	// Orders y stats
	orderHandler := NewOrderHandler(deps.OrderUC, deps.StatsUC)
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	api.Get("/stats", orderHandler.Stats)

	// Despacho por nombre de operación
	executeHandler := NewExecuteHandler(deps.Registry)
	api.Post("/execute", executeHandler.Execute)
}
