package repository

import "github.com/aguatrack/aguatrack-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones van acotadas por businessID: un cliente de otro
// negocio se resuelve como no-encontrado, nunca como prohibido.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByBusinessAndID(businessID, id string) (*entity.Customer, error)
	ListByBusiness(businessID string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete elimina el cliente pero conserva su historial de entregas y logs.
	Delete(businessID, id string) error
}
