package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/application/usecase"
	"github.com/aguatrack/aguatrack-api/internal/domain"
)

// BulkOrderHandler maneja los pedidos por volumen.
type BulkOrderHandler struct {
	uc *usecase.BulkOrderUseCase
}

// NewBulkOrderHandler construye el handler.
func NewBulkOrderHandler(uc *usecase.BulkOrderUseCase) *BulkOrderHandler {
	return &BulkOrderHandler{uc: uc}
}

// Create POST /api/bulk-orders
func (h *BulkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBulkOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	order, err := h.uc.Create(GetBusinessID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente, cantidad, fecha o precio inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/bulk-orders
func (h *BulkOrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/bulk-orders/:id
func (h *BulkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBulkOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	order, err := h.uc.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el pedido no existe en tu negocio"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// Delete DELETE /api/bulk-orders/:id
func (h *BulkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el pedido no existe en tu negocio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}
