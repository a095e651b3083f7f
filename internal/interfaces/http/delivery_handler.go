package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/application/ledger"
	"github.com/aguatrack/aguatrack-api/internal/domain"
)

// DeliveryHandler maneja el libro de entregas diario.
type DeliveryHandler struct {
	uc *ledger.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *ledger.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Record POST /api/deliveries — upsert con clave (cliente, día).
func (h *DeliveryHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordDeliveryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	delivery, err := h.uc.Record(GetBusinessID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha, estado o montos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(delivery)
}

// List GET /api/deliveries?customerId=&startDate=&endDate=
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(
		GetBusinessID(c),
		c.Query("customerId"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// PendingPayments GET /api/deliveries/pending
func (h *DeliveryHandler) PendingPayments(c *fiber.Ctx) error {
	list, err := h.uc.PendingPayments(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
