package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertMonthlyLogRequest registra el día de un cliente de suscripción mensual.
// Si DeliveryStatus es not_done el servidor fuerza PaymentStatus a unpaid,
// ignorando el valor enviado.
type UpsertMonthlyLogRequest struct {
	DeliveryStatus string          `json:"deliveryStatus" validate:"required,oneof=done not_done"`
	PaymentStatus  string          `json:"paymentStatus" validate:"required,oneof=paid unpaid"`
	Amount         decimal.Decimal `json:"amount"`
}

// MonthlyLogResponse representación del log mensual.
type MonthlyLogResponse struct {
	ID             string          `json:"id"`
	BusinessID     string          `json:"businessId"`
	CustomerID     string          `json:"customerId"`
	Date           time.Time       `json:"date"`
	DeliveryStatus string          `json:"deliveryStatus"`
	PaymentStatus  string          `json:"paymentStatus"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
