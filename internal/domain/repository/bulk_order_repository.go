package repository

import "github.com/aguatrack/aguatrack-api/internal/domain/entity"

// BulkOrderWithCustomer fila del listado con la identidad del cliente unida.
type BulkOrderWithCustomer struct {
	entity.BulkOrder
	CustomerName  string
	CustomerPhone string
}

// BulkOrderRepository define el puerto de persistencia para pedidos por volumen.
type BulkOrderRepository interface {
	Create(order *entity.BulkOrder) error
	GetByBusinessAndID(businessID, id string) (*entity.BulkOrder, error)
	ListByBusiness(businessID string) ([]*BulkOrderWithCustomer, error)
	Update(order *entity.BulkOrder) error
	Delete(businessID, id string) error
}
