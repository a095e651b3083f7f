package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordDeliveryRequest registra (o sobreescribe) la entrega de un día.
// Date acepta "2006-01-02" o RFC 3339; el caso de uso la trunca al inicio del
// día local antes de usarla como clave.
type RecordDeliveryRequest struct {
	CustomerID string          `json:"customerId" validate:"required,uuid4"`
	Date       string          `json:"date" validate:"required"`
	Status     string          `json:"status" validate:"required,oneof=done not_done"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	AmountDue  decimal.Decimal `json:"amountDue"`
	Quantity   int             `json:"quantity" validate:"omitempty,min=1"`
}

// DeliveryResponse entrega con la identidad del cliente unida para el listado.
type DeliveryResponse struct {
	ID            string          `json:"id"`
	BusinessID    string          `json:"businessId"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	Quantity      int             `json:"quantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PendingPaymentResponse saldo pendiente agrupado por cliente.
type PendingPaymentResponse struct {
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	TotalDue      decimal.Decimal `json:"totalDue"`
}
