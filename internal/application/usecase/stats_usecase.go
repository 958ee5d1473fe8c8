package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// StatsUseCase consultas agregadas de solo lectura.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Totals devuelve los totales del CRM leyendo el store en el momento de la
// llamada. Sin órdenes, el revenue es cero.
func (uc *StatsUseCase) Totals(ctx context.Context) (*dto.StatsResponse, error) {
	customers, err := uc.repo.TotalCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.TotalOrders(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
	}, nil
}
