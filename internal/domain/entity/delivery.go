package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de entrega (compartidos por Delivery y MonthlyLog).
const (
	DeliveryDone    = "done"
	DeliveryNotDone = "not_done"
)

// Delivery es una entrada del libro diario de entregas puntuales: una fila por
// (negocio, cliente, día). Date siempre va truncada al inicio del día local
// porque forma parte de la clave de identidad del upsert.
type Delivery struct {
	ID         string
	BusinessID string
	CustomerID string
	Date       time.Time
	Status     string // done | not_done
	AmountPaid decimal.Decimal
	AmountDue  decimal.Decimal
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
