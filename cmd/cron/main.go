package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/internal/jobs"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// Nombres fijos de los logs append-only, uno por job.
const (
	heartbeatLog = "crm_heartbeat_log.txt"
	lowStockLog  = "low_stock_updates_log.txt"
	remindersLog = "order_reminders_log.txt"
	reportLog    = "crm_report_log.txt"
)

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
		Str("log_dir", cfg.Jobs.LogDir).
		Msg("iniciando scheduler de jobs")

	ctx := context.Background()
	gw, err := buildGateways(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al store")
	}
	defer gw.close()

	productUC := usecase.NewProductUseCase(gw.products)
	orderUC := usecase.NewOrderUseCase(gw.customers, gw.products, gw.orders)
	statsUC := usecase.NewStatsUseCase(gw.stats)

	sink := func(name, layout string) jobs.Sink {
		return jobs.NewFileSink(filepath.Join(cfg.Jobs.LogDir, name), layout)
	}

	runners := []struct {
		schedule string
		job      jobs.Job
	}{
		{cfg.Jobs.HeartbeatSchedule, jobs.NewHeartbeat(sink(heartbeatLog, jobs.HeartbeatTimeLayout), cfg.Jobs.HelloURL)},
		{cfg.Jobs.LowStockSchedule, jobs.NewLowStockRestock(productUC, sink(lowStockLog, jobs.ReportTimeLayout))},
		{cfg.Jobs.RemindersSchedule, jobs.NewOrderReminders(orderUC, sink(remindersLog, jobs.ReportTimeLayout))},
		{cfg.Jobs.ReportSchedule, jobs.NewReport(statsUC, sink(reportLog, jobs.ReportTimeLayout))},
	}

	scheduler := cron.New()
	for _, r := range runners {
		job := r.job
		_, err := scheduler.AddFunc(r.schedule, func() { runJob(log, job) })
		if err != nil {
			log.Fatal().Err(err).Str("job", job.Name()).Str("schedule", r.schedule).Msg("registrar job")
		}
		log.Info().Str("job", job.Name()).Str("schedule", r.schedule).Msg("job registrado")
	}

	scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando scheduler")
	<-scheduler.Stop().Done()
}

// runJob ejecuta una corrida aislada: un pánico o error queda en el log del
// proceso y nunca tumba al scheduler.
func runJob(log *logger.Logger, job jobs.Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("job", job.Name()).Interface("panic", r).Msg("job con pánico")
		}
	}()
	start := time.Now()
	if err := job.Run(context.Background()); err != nil {
		log.Error().Err(err).Str("job", job.Name()).Dur("elapsed", time.Since(start)).Msg("job falló")
		return
	}
	log.Info().Str("job", job.Name()).Dur("elapsed", time.Since(start)).Msg("job ok")
}
