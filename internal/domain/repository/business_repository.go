package repository

import "github.com/aguatrack/aguatrack-api/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure.
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	// GetByOwner resuelve el negocio de un dueño. El esquema no impone un
	// negocio por dueño; el lookup devuelve el más antiguo si hubiera varios.
	GetByOwner(ownerID string) (*entity.Business, error)
	Update(business *entity.Business) error
}
