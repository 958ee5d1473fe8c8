package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validator"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CustomerUseCase mutaciones de clientes: alta individual y alta masiva.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. Los rechazos de validación (email duplicado, teléfono
// mal formado, campos requeridos) vuelven como resultado con Success=false; solo
// las fallas del store se devuelven como error.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResult, error) {
	if in.Name == "" || in.Email == "" {
		return &dto.CustomerResult{Success: false, Message: "Name and email are required"}, nil
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.CustomerResult{Success: false, Message: "Email already exists"}, nil
	}
	if in.Phone != "" && !validator.ValidPhone(in.Phone) {
		return &dto.CustomerResult{Success: false, Message: validator.PhoneFormatMessage}, nil
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		// El constraint único del store es el respaldo del pre-chequeo: ambos
		// caminos reportan el mismo rechazo.
		if errors.Is(err, domain.ErrDuplicate) {
			return &dto.CustomerResult{Success: false, Message: "Email already exists"}, nil
		}
		return nil, err
	}
	return &dto.CustomerResult{
		Success:  true,
		Message:  "Customer created successfully",
		Customer: toCustomerResponse(customer),
	}, nil
}

// BulkCreate crea clientes en lote con commit parcial: cada ítem se valida y
// persiste de forma independiente, en el orden de entrada. Un ítem rechazado
// agrega su mensaje a Errors y no afecta a los demás; los ítems posteriores
// observan los efectos de los anteriores (un email repetido dentro del mismo
// lote entra la primera vez y se rechaza la segunda).
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, in dto.BulkCreateCustomersRequest) (*dto.BulkCustomersResult, error) {
	result := &dto.BulkCustomersResult{
		CreatedCustomers: []*dto.CustomerResponse{},
		Errors:           []string{},
	}
	for _, item := range in.Customers {
		if item.Email == "" {
			result.Errors = append(result.Errors, "Unknown: name and email are required")
			continue
		}
		if item.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: name is required", item.Email))
			continue
		}
		existing, err := uc.repo.GetByEmail(ctx, item.Email)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Email, err))
			continue
		}
		if existing != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Email already exists: %s", item.Email))
			continue
		}
		if item.Phone != "" && !validator.ValidPhone(item.Phone) {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid phone format for %s", item.Email))
			continue
		}
		customer := &entity.Customer{
			ID:        uuid.New().String(),
			Name:      item.Name,
			Email:     item.Email,
			Phone:     item.Phone,
			CreatedAt: time.Now(),
		}
		if err := uc.repo.Create(ctx, customer); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				result.Errors = append(result.Errors, fmt.Sprintf("Email already exists: %s", item.Email))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Email, err))
			}
			continue
		}
		result.CreatedCustomers = append(result.CreatedCustomers, toCustomerResponse(customer))
	}
	return result, nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
