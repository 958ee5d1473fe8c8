package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validator"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Umbral y cantidad fija de reabastecimiento.
const (
	lowStockThreshold = 10
	restockQuantity   = 10
)

// ProductUseCase mutaciones de productos: alta y reabastecimiento de bajo stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Precio <= 0 y stock < 0 son rechazos de validación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResult, error) {
	if !validator.ValidPrice(in.Price) {
		return &dto.ProductResult{Success: false, Message: validator.PriceMessage}, nil
	}
	if !validator.ValidStock(in.Stock) {
		return &dto.ProductResult{Success: false, Message: validator.StockMessage}, nil
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.ProductResult{
		Success: true,
		Message: "Product created successfully",
		Product: toProductResponse(product),
	}, nil
}

// RestockLowStock incrementa en una cantidad fija el stock de todos los
// productos por debajo del umbral. Es best-effort: una falla al persistir un
// producto se acumula en Errors y no aborta el resto. Correrlo dos veces
// reabastece dos veces; modela ciclos repetidos de reposición.
func (uc *ProductUseCase) RestockLowStock(ctx context.Context) (*dto.RestockResult, error) {
	lowStock, err := uc.repo.ListLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	result := &dto.RestockResult{UpdatedProducts: []*dto.ProductResponse{}}
	for _, product := range lowStock {
		product.Stock += restockQuantity
		if err := uc.repo.UpdateStock(ctx, product); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", product.Name, err))
			continue
		}
		result.UpdatedProducts = append(result.UpdatedProducts, toProductResponse(product))
	}
	result.Success = true
	result.Message = fmt.Sprintf("%d products restocked at %s",
		len(result.UpdatedProducts), time.Now().Format("02/01/2006 15:04:05"))
	return result, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}
