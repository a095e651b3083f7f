package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// DeliveryUseCase casos de uso del libro diario de entregas puntuales.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

// Record registra la entrega de un día: upsert con clave
// (businessID, customerID, fecha truncada al día). Si ya existe un registro
// para esa clave se sobreescriben estado, montos y cantidad; el resultado
// refleja siempre el estado post-escritura.
func (uc *DeliveryUseCase) Record(businessID string, in dto.RecordDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != entity.DeliveryDone && in.Status != entity.DeliveryNotDone {
		return nil, domain.ErrInvalidInput
	}
	if in.AmountPaid.IsNegative() || in.AmountDue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	now := time.Now()
	delivery := &entity.Delivery{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		CustomerID: in.CustomerID,
		Date:       TruncateToDay(date),
		Status:     in.Status,
		AmountPaid: in.AmountPaid,
		AmountDue:  in.AmountDue,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	stored, err := uc.repo.Upsert(delivery)
	if err != nil {
		return nil, err
	}
	return deliveryToResponse(stored, "", ""), nil
}

// List lista las entregas del negocio, opcionalmente filtradas por cliente y
// por rango de fechas. El rango se aplica solo cuando vienen ambos extremos y
// se interpreta como días completos inclusivos.
func (uc *DeliveryUseCase) List(businessID, customerID, startDate, endDate string) ([]*dto.DeliveryResponse, error) {
	filter := repository.DeliveryFilter{CustomerID: customerID}
	if startDate != "" && endDate != "" {
		start, err := ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		end, err := ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		from := TruncateToDay(start)
		to := EndOfDay(end)
		if to.Before(from) {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
		filter.To = &to
	}
	rows, err := uc.repo.List(businessID, filter)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.DeliveryResponse, 0, len(rows))
	for _, row := range rows {
		list = append(list, deliveryToResponse(&row.Delivery, row.CustomerName, row.CustomerPhone))
	}
	return list, nil
}

// PendingPayments agrupa por cliente el saldo pendiente: solo entregas hechas
// (status done) con amount_due > 0. Una entrega no realizada no cuenta como
// pago pendiente aunque traiga monto adeudado.
func (uc *DeliveryUseCase) PendingPayments(businessID string) ([]*dto.PendingPaymentResponse, error) {
	rows, err := uc.repo.PendingPayments(businessID)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.PendingPaymentResponse, 0, len(rows))
	for _, row := range rows {
		list = append(list, &dto.PendingPaymentResponse{
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			TotalDue:      row.TotalDue,
		})
	}
	return list, nil
}

func deliveryToResponse(d *entity.Delivery, customerName, customerPhone string) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:            d.ID,
		BusinessID:    d.BusinessID,
		CustomerID:    d.CustomerID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Date:          d.Date,
		Status:        d.Status,
		AmountPaid:    d.AmountPaid,
		AmountDue:     d.AmountDue,
		Quantity:      d.Quantity,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
