package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.MonthlyLogRepository = (*MonthlyLogRepo)(nil)

// MonthlyLogRepo implementación del log de suscripción mensual sobre PostgreSQL.
type MonthlyLogRepo struct {
	q Querier
}

// NewMonthlyLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMonthlyLogRepository(q Querier) *MonthlyLogRepo {
	return &MonthlyLogRepo{q: q}
}

// Upsert inserta o sobreescribe el log del día, mismo patrón atómico que el
// libro de entregas: la constraint única serializa escrituras concurrentes.
func (r *MonthlyLogRepo) Upsert(log *entity.MonthlyLog) (*entity.MonthlyLog, error) {
	query := `
		INSERT INTO monthly_logs (id, business_id, customer_id, date, delivery_status, payment_status, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (business_id, customer_id, date)
		DO UPDATE SET delivery_status = EXCLUDED.delivery_status,
			payment_status = EXCLUDED.payment_status, amount = EXCLUDED.amount, updated_at = now()
		RETURNING id, business_id, customer_id, date, delivery_status, payment_status, amount, created_at, updated_at`
	var m entity.MonthlyLog
	err := r.q.QueryRow(context.Background(), query,
		log.ID, log.BusinessID, log.CustomerID, log.Date,
		log.DeliveryStatus, log.PaymentStatus, log.Amount,
		log.CreatedAt, log.UpdatedAt,
	).Scan(
		&m.ID, &m.BusinessID, &m.CustomerID, &m.Date,
		&m.DeliveryStatus, &m.PaymentStatus, &m.Amount, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert monthly log: %w", err)
	}
	return &m, nil
}

// ListByMonth lista los logs del cliente dentro del rango del mes calendario.
func (r *MonthlyLogRepo) ListByMonth(businessID, customerID string, from, to time.Time) ([]*entity.MonthlyLog, error) {
	query := `
		SELECT id, business_id, customer_id, date, delivery_status, payment_status, amount, created_at, updated_at
		FROM monthly_logs
		WHERE business_id = $1 AND customer_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, businessID, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list monthly logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyLog
	for rows.Next() {
		var m entity.MonthlyLog
		if err := rows.Scan(
			&m.ID, &m.BusinessID, &m.CustomerID, &m.Date,
			&m.DeliveryStatus, &m.PaymentStatus, &m.Amount, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan monthly log: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
