package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBulkOrderRequest alta de pedido por volumen.
type CreateBulkOrderRequest struct {
	CustomerID   string          `json:"customerId" validate:"required,uuid4"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	DeliveryDate string          `json:"deliveryDate" validate:"required"`
	Price        decimal.Decimal `json:"price"`
}

// UpdateBulkOrderRequest actualización parcial del pedido.
type UpdateBulkOrderRequest struct {
	Quantity     *int             `json:"quantity" validate:"omitempty,min=1"`
	DeliveryDate *string          `json:"deliveryDate"`
	Status       *string          `json:"status" validate:"omitempty,oneof=pending delivered cancelled"`
	Price        *decimal.Decimal `json:"price"`
}

// BulkOrderResponse pedido con la identidad del cliente unida.
type BulkOrderResponse struct {
	ID            string          `json:"id"`
	BusinessID    string          `json:"businessId"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Quantity      int             `json:"quantity"`
	DeliveryDate  time.Time       `json:"deliveryDate"`
	Status        string          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
