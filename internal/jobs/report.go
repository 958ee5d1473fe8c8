package jobs

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// Report genera el resumen periódico del CRM: totales de clientes, órdenes y
// revenue en una sola línea. Un error de consulta se anota en lugar del resumen.
type Report struct {
	stats *usecase.StatsUseCase
	sink  Sink
}

var _ Job = (*Report)(nil)

// NewReport construye el job.
func NewReport(stats *usecase.StatsUseCase, sink Sink) *Report {
	return &Report{stats: stats, sink: sink}
}

func (j *Report) Name() string { return "report" }

// Run genera una corrida del reporte.
func (j *Report) Run(ctx context.Context) error {
	totals, err := j.stats.Totals(ctx)
	if err != nil {
		_ = j.sink.Append(fmt.Sprintf("Error: %v", err))
		return err
	}
	line := fmt.Sprintf("Report: %d customers, %d orders, %s revenue",
		totals.TotalCustomers, totals.TotalOrders, totals.TotalRevenue)
	return j.sink.Append(line)
}
