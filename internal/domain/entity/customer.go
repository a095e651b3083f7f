package entity

import "time"

// Estados de cliente.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Customer representa un cliente del negocio.
// Borrar un cliente NO borra sus entregas ni logs históricos: los registros
// quedan huérfanos a propósito para no alterar los totales pasados.
type Customer struct {
	ID         string
	BusinessID string
	Name       string
	Phone      string
	Address    string
	Status     string // active | inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
