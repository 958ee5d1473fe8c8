package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// ExecuteRequest cuerpo de POST /api/execute: una operación por nombre con su
// payload crudo (el equivalente al endpoint único /graphql del CRM original).
type ExecuteRequest struct {
	Operation string          `json:"operation"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// ExecuteHandler despacha operaciones a través del registro por nombre.
type ExecuteHandler struct {
	registry *usecase.Registry
}

// NewExecuteHandler construye el handler.
func NewExecuteHandler(registry *usecase.Registry) *ExecuteHandler {
	return &ExecuteHandler{registry: registry}
}

// Execute POST /api/execute
func (h *ExecuteHandler) Execute(c *fiber.Ctx) error {
	var in ExecuteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.registry.Call(c.Context(), in.Operation, in.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_OPERATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}
