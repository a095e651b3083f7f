package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
)

// DeliveryFilter filtros opcionales del listado de entregas.
// Si From/To están presentes deben venir ya expandidos a límites de día
// completo (start 00:00:00.000, end 23:59:59.999); eso lo hace el caso de uso.
type DeliveryFilter struct {
	CustomerID string
	From       *time.Time
	To         *time.Time
}

// DeliveryWithCustomer fila del listado con la identidad del cliente ya unida.
type DeliveryWithCustomer struct {
	entity.Delivery
	CustomerName  string
	CustomerPhone string
}

// PendingPaymentResult saldo pendiente de un cliente: suma de amount_due de
// sus entregas hechas (status done). Las no realizadas quedan fuera.
type PendingPaymentResult struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	TotalDue      decimal.Decimal
}

// DeliveryRepository define el puerto de persistencia del libro de entregas.
type DeliveryRepository interface {
	// Upsert inserta o sobreescribe la entrega con clave
	// (business_id, customer_id, date) en un solo write atómico del store.
	// Devuelve siempre el estado post-escritura.
	Upsert(delivery *entity.Delivery) (*entity.Delivery, error)
	List(businessID string, filter DeliveryFilter) ([]*DeliveryWithCustomer, error)
	PendingPayments(businessID string) ([]*PendingPaymentResult, error)
}
