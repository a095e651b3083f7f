package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// MonthlyLogUseCase casos de uso del log de suscripción mensual.
type MonthlyLogUseCase struct {
	repo repository.MonthlyLogRepository
}

// NewMonthlyLogUseCase construye el caso de uso.
func NewMonthlyLogUseCase(repo repository.MonthlyLogRepository) *MonthlyLogUseCase {
	return &MonthlyLogUseCase{repo: repo}
}

// Upsert registra el día de un cliente de suscripción con clave
// (businessID, customerID, fecha truncada al día).
//
// Invariante de negocio: sin entrega no hay cobro. Si DeliveryStatus es
// not_done el pago se fuerza a unpaid ignorando lo que haya enviado el caller;
// no es un default, es una regla dura aplicada en cada escritura.
func (uc *MonthlyLogUseCase) Upsert(businessID, customerID, date string, in dto.UpsertMonthlyLogRequest) (*dto.MonthlyLogResponse, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryStatus != entity.DeliveryDone && in.DeliveryStatus != entity.DeliveryNotDone {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentStatus != entity.PaymentPaid && in.PaymentStatus != entity.PaymentUnpaid {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	parsed, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	paymentStatus := in.PaymentStatus
	if in.DeliveryStatus == entity.DeliveryNotDone {
		paymentStatus = entity.PaymentUnpaid
	}

	now := time.Now()
	log := &entity.MonthlyLog{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		CustomerID:     customerID,
		Date:           TruncateToDay(parsed),
		DeliveryStatus: in.DeliveryStatus,
		PaymentStatus:  paymentStatus,
		Amount:         in.Amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := uc.repo.Upsert(log)
	if err != nil {
		return nil, err
	}
	return monthlyLogToResponse(stored), nil
}

// List lista los logs de un cliente dentro de un mes "YYYY-MM", expandido al
// mes calendario completo con su longitud real.
func (uc *MonthlyLogUseCase) List(businessID, customerID, yearMonth string) ([]*dto.MonthlyLogResponse, error) {
	if customerID == "" || yearMonth == "" {
		return nil, domain.ErrInvalidInput
	}
	start, end, err := MonthBounds(yearMonth)
	if err != nil {
		return nil, err
	}
	logs, err := uc.repo.ListByMonth(businessID, customerID, start, end)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.MonthlyLogResponse, 0, len(logs))
	for _, log := range logs {
		list = append(list, monthlyLogToResponse(log))
	}
	return list, nil
}

func monthlyLogToResponse(l *entity.MonthlyLog) *dto.MonthlyLogResponse {
	return &dto.MonthlyLogResponse{
		ID:             l.ID,
		BusinessID:     l.BusinessID,
		CustomerID:     l.CustomerID,
		Date:           l.Date,
		DeliveryStatus: l.DeliveryStatus,
		PaymentStatus:  l.PaymentStatus,
		Amount:         l.Amount,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
