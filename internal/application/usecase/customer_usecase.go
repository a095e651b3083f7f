package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// CustomerUseCase casos de uso del registro de clientes del negocio.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente del negocio.
func (uc *CustomerUseCase) Create(businessID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Phone:      in.Phone,
		Address:    in.Address,
		Status:     entity.CustomerActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// List lista los clientes del negocio.
func (uc *CustomerUseCase) List(businessID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, customerToResponse(c))
	}
	return items, nil
}

// Update actualización parcial de un cliente. Un cliente de otro negocio se
// resuelve como no-encontrado.
func (uc *CustomerUseCase) Update(businessID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByBusinessAndID(businessID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Status != nil {
		if *in.Status != entity.CustomerActive && *in.Status != entity.CustomerInactive {
			return nil, domain.ErrInvalidInput
		}
		customer.Status = *in.Status
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// Delete elimina un cliente. Sus entregas y logs históricos se conservan para
// no alterar los totales pasados del dashboard.
func (uc *CustomerUseCase) Delete(businessID, id string) error {
	customer, err := uc.repo.GetByBusinessAndID(businessID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(businessID, id)
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
