package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido por volumen.
const (
	BulkOrderPending   = "pending"
	BulkOrderDelivered = "delivered"
	BulkOrderCancelled = "cancelled"
)

// BulkOrder es un pedido grande puntual (eventos, oficinas). Tiene ciclo de
// vida propio y nunca entra en la agregación de ingresos del dashboard.
type BulkOrder struct {
	ID           string
	BusinessID   string
	CustomerID   string
	Quantity     int
	DeliveryDate time.Time
	Status       string // pending | delivered | cancelled
	Price        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
