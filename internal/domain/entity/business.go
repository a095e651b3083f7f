package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business representa un negocio de reparto de agua: el tenant del sistema.
// Todo el resto de entidades cuelga de BusinessID como frontera de partición.
type Business struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	DefaultPrice decimal.Decimal // precio por entrega usado como sugerencia en la UI
	OwnerID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
