package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago del log mensual.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// MonthlyLog es una entrada del libro de suscripción mensual (tarifa plana):
// una fila por (negocio, cliente, día), respaldada por una constraint única.
//
// Regla de negocio dura: si DeliveryStatus es not_done, PaymentStatus debe ser
// unpaid. El caso de uso la fuerza en escritura ignorando el valor del caller.
type MonthlyLog struct {
	ID             string
	BusinessID     string
	CustomerID     string
	Date           time.Time
	DeliveryStatus string // done | not_done
	PaymentStatus  string // paid | unpaid
	Amount         decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
