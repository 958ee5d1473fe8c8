package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// gateways agrupa los repositorios concretos según el driver configurado.
type gateways struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	stats     repository.StatsRepository
	close     func()
}

func buildGateways(ctx context.Context, cfg *config.Config, log *logger.Logger) (*gateways, error) {
	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("store in-memory: los datos no sobreviven al proceso")
		store := memory.NewStore()
		return &gateways{
			customers: store.Customers(),
			products:  store.Products(),
			orders:    store.Orders(),
			stats:     store.Stats(),
			close:     func() {},
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &gateways{
		customers: postgres.NewCustomerRepository(pool),
		products:  postgres.NewProductRepository(pool),
		orders:    postgres.NewOrderRepository(pool),
		stats:     postgres.NewStatsRepository(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	gw, err := buildGateways(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al store")
	}
	defer gw.close()

	customerUC := usecase.NewCustomerUseCase(gw.customers)
	productUC := usecase.NewProductUseCase(gw.products)
	orderUC := usecase.NewOrderUseCase(gw.customers, gw.products, gw.orders)
	statsUC := usecase.NewStatsUseCase(gw.stats)
	registry := usecase.NewRegistry(customerUC, productUC, orderUC, statsUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		StatsUC:    statsUC,
		Registry:   registry,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
