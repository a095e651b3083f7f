package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/application/ledger"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// BulkOrderUseCase casos de uso de pedidos por volumen. Ciclo de vida
// independiente: estos pedidos nunca entran en la agregación del dashboard.
type BulkOrderUseCase struct {
	repo repository.BulkOrderRepository
}

// NewBulkOrderUseCase construye el caso de uso.
func NewBulkOrderUseCase(repo repository.BulkOrderRepository) *BulkOrderUseCase {
	return &BulkOrderUseCase{repo: repo}
}

// Create crea un pedido en estado pending.
func (uc *BulkOrderUseCase) Create(businessID string, in dto.CreateBulkOrderRequest) (*dto.BulkOrderResponse, error) {
	if in.CustomerID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := ledger.ParseDate(in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.BulkOrder{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		CustomerID:   in.CustomerID,
		Quantity:     in.Quantity,
		DeliveryDate: date,
		Status:       entity.BulkOrderPending,
		Price:        in.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return bulkOrderToResponse(order, "", ""), nil
}

// List lista los pedidos del negocio con la identidad del cliente unida.
func (uc *BulkOrderUseCase) List(businessID string) ([]*dto.BulkOrderResponse, error) {
	rows, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.BulkOrderResponse, 0, len(rows))
	for _, row := range rows {
		list = append(list, bulkOrderToResponse(&row.BulkOrder, row.CustomerName, row.CustomerPhone))
	}
	return list, nil
}

// Update actualización parcial del pedido (cantidad, fecha, estado, precio).
func (uc *BulkOrderUseCase) Update(businessID, id string, in dto.UpdateBulkOrderRequest) (*dto.BulkOrderResponse, error) {
	order, err := uc.repo.GetByBusinessAndID(businessID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		order.Quantity = *in.Quantity
	}
	if in.DeliveryDate != nil {
		date, err := ledger.ParseDate(*in.DeliveryDate)
		if err != nil {
			return nil, err
		}
		order.DeliveryDate = date
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.BulkOrderPending, entity.BulkOrderDelivered, entity.BulkOrderCancelled:
			order.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.Price = *in.Price
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return bulkOrderToResponse(order, "", ""), nil
}

// Delete elimina un pedido del negocio.
func (uc *BulkOrderUseCase) Delete(businessID, id string) error {
	order, err := uc.repo.GetByBusinessAndID(businessID, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(businessID, id)
}

func bulkOrderToResponse(o *entity.BulkOrder, customerName, customerPhone string) *dto.BulkOrderResponse {
	return &dto.BulkOrderResponse{
		ID:            o.ID,
		BusinessID:    o.BusinessID,
		CustomerID:    o.CustomerID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Quantity:      o.Quantity,
		DeliveryDate:  o.DeliveryDate,
		Status:        o.Status,
		Price:         o.Price,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
