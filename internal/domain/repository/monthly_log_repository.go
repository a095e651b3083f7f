package repository

import (
	"time"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
)

// MonthlyLogRepository define el puerto de persistencia del log de suscripción mensual.
type MonthlyLogRepository interface {
	// Upsert inserta o sobreescribe el log con clave (business_id, customer_id, date).
	// La tabla tiene constraint única sobre esa clave: escrituras concurrentes
	// serializan en el store, nunca duplican. Devuelve el estado post-escritura.
	Upsert(log *entity.MonthlyLog) (*entity.MonthlyLog, error)
	// ListByMonth lista los logs del cliente dentro del rango [from, to] ya
	// expandido por el caso de uso al mes calendario completo.
	ListByMonth(businessID, customerID string, from, to time.Time) ([]*entity.MonthlyLog, error)
}
