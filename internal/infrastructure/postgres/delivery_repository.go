package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del libro de entregas sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Upsert inserta o sobreescribe la entrega del día en un solo write atómico.
// La constraint única sobre (business_id, customer_id, date) respalda la
// clave: dos escrituras concurrentes del mismo día serializan en el store en
// vez de duplicar. RETURNING devuelve siempre el estado post-escritura.
func (r *DeliveryRepo) Upsert(delivery *entity.Delivery) (*entity.Delivery, error) {
	query := `
		INSERT INTO deliveries (id, business_id, customer_id, date, status, amount_paid, amount_due, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (business_id, customer_id, date)
		DO UPDATE SET status = EXCLUDED.status, amount_paid = EXCLUDED.amount_paid,
			amount_due = EXCLUDED.amount_due, quantity = EXCLUDED.quantity, updated_at = now()
		RETURNING id, business_id, customer_id, date, status, amount_paid, amount_due, quantity, created_at, updated_at`
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query,
		delivery.ID, delivery.BusinessID, delivery.CustomerID, delivery.Date,
		delivery.Status, delivery.AmountPaid, delivery.AmountDue, delivery.Quantity,
		delivery.CreatedAt, delivery.UpdatedAt,
	).Scan(
		&d.ID, &d.BusinessID, &d.CustomerID, &d.Date, &d.Status,
		&d.AmountPaid, &d.AmountDue, &d.Quantity, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert delivery: %w", err)
	}
	return &d, nil
}

// List lista entregas del negocio con la identidad del cliente unida.
// LEFT JOIN: una entrega de un cliente ya borrado sigue apareciendo.
func (r *DeliveryRepo) List(businessID string, filter repository.DeliveryFilter) ([]*repository.DeliveryWithCustomer, error) {
	query := `
		SELECT d.id, d.business_id, d.customer_id, d.date, d.status, d.amount_paid,
			d.amount_due, d.quantity, d.created_at, d.updated_at,
			COALESCE(c.name, ''), COALESCE(c.phone, '')
		FROM deliveries d
		LEFT JOIN customers c ON c.id = d.customer_id AND c.business_id = d.business_id
		WHERE d.business_id = $1`
	args := []any{businessID}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += ` AND d.customer_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil && filter.To != nil {
		args = append(args, *filter.From, *filter.To)
		query += ` AND d.date BETWEEN $` + strconv.Itoa(len(args)-1) + ` AND $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY d.date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*repository.DeliveryWithCustomer
	for rows.Next() {
		var row repository.DeliveryWithCustomer
		if err := rows.Scan(
			&row.ID, &row.BusinessID, &row.CustomerID, &row.Date, &row.Status,
			&row.AmountPaid, &row.AmountDue, &row.Quantity, &row.CreatedAt, &row.UpdatedAt,
			&row.CustomerName, &row.CustomerPhone,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// PendingPayments agrupa por cliente el saldo de entregas hechas con deuda.
func (r *DeliveryRepo) PendingPayments(businessID string) ([]*repository.PendingPaymentResult, error) {
	query := `
		SELECT d.customer_id, COALESCE(c.name, ''), COALESCE(c.phone, ''),
			SUM(d.amount_due) AS total_due
		FROM deliveries d
		LEFT JOIN customers c ON c.id = d.customer_id AND c.business_id = d.business_id
		WHERE d.business_id = $1 AND d.status = 'done' AND d.amount_due > 0
		GROUP BY d.customer_id, c.name, c.phone
		ORDER BY total_due DESC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("pending payments: %w", err)
	}
	defer rows.Close()
	var list []*repository.PendingPaymentResult
	for rows.Next() {
		var row repository.PendingPaymentResult
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.CustomerPhone, &row.TotalDue); err != nil {
			return nil, fmt.Errorf("scan pending payment: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
