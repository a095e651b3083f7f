package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBusinessRequest alta del negocio durante el onboarding.
type CreateBusinessRequest struct {
	Name         string          `json:"name" validate:"required"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
}

// UpdateBusinessRequest actualización parcial: solo los campos presentes cambian.
type UpdateBusinessRequest struct {
	Name         *string          `json:"name"`
	Address      *string          `json:"address"`
	Phone        *string          `json:"phone"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
}

// BusinessResponse representación del negocio.
type BusinessResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
