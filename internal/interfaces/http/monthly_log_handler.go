package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/application/ledger"
	"github.com/aguatrack/aguatrack-api/internal/domain"
)

// MonthlyLogHandler maneja el log de suscripción mensual (tarifa plana).
type MonthlyLogHandler struct {
	uc *ledger.MonthlyLogUseCase
}

// NewMonthlyLogHandler construye el handler.
func NewMonthlyLogHandler(uc *ledger.MonthlyLogUseCase) *MonthlyLogHandler {
	return &MonthlyLogHandler{uc: uc}
}

// Upsert PUT /api/monthly-logs/:customerId/:date
func (h *MonthlyLogHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertMonthlyLogRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	log, err := h.uc.Upsert(GetBusinessID(c), c.Params("customerId"), c.Params("date"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha, estado o monto inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(log)
}

// List GET /api/monthly-logs/:customerId?month=YYYY-MM
func (h *MonthlyLogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetBusinessID(c), c.Params("customerId"), c.Query("month"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe tener formato YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
