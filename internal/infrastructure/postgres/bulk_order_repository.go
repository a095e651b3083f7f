package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.BulkOrderRepository = (*BulkOrderRepo)(nil)

// BulkOrderRepo implementación de pedidos por volumen sobre PostgreSQL.
type BulkOrderRepo struct {
	q Querier
}

// NewBulkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBulkOrderRepository(q Querier) *BulkOrderRepo {
	return &BulkOrderRepo{q: q}
}

func (r *BulkOrderRepo) Create(order *entity.BulkOrder) error {
	query := `
		INSERT INTO bulk_orders (id, business_id, customer_id, quantity, delivery_date, status, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.BusinessID, order.CustomerID, order.Quantity,
		order.DeliveryDate, order.Status, order.Price, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create bulk order: %w", err)
	}
	return nil
}

// GetByBusinessAndID devuelve (nil, nil) cuando no existe.
func (r *BulkOrderRepo) GetByBusinessAndID(businessID, id string) (*entity.BulkOrder, error) {
	query := `
		SELECT id, business_id, customer_id, quantity, delivery_date, status, price, created_at, updated_at
		FROM bulk_orders WHERE business_id = $1 AND id = $2`
	var o entity.BulkOrder
	err := r.q.QueryRow(context.Background(), query, businessID, id).Scan(
		&o.ID, &o.BusinessID, &o.CustomerID, &o.Quantity,
		&o.DeliveryDate, &o.Status, &o.Price, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bulk order: %w", err)
	}
	return &o, nil
}

// ListByBusiness lista por fecha de entrega próxima primero, con la identidad
// del cliente unida (LEFT JOIN conserva pedidos de clientes borrados).
func (r *BulkOrderRepo) ListByBusiness(businessID string) ([]*repository.BulkOrderWithCustomer, error) {
	query := `
		SELECT o.id, o.business_id, o.customer_id, o.quantity, o.delivery_date,
			o.status, o.price, o.created_at, o.updated_at,
			COALESCE(c.name, ''), COALESCE(c.phone, '')
		FROM bulk_orders o
		LEFT JOIN customers c ON c.id = o.customer_id AND c.business_id = o.business_id
		WHERE o.business_id = $1
		ORDER BY o.delivery_date ASC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list bulk orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.BulkOrderWithCustomer
	for rows.Next() {
		var row repository.BulkOrderWithCustomer
		if err := rows.Scan(
			&row.ID, &row.BusinessID, &row.CustomerID, &row.Quantity, &row.DeliveryDate,
			&row.Status, &row.Price, &row.CreatedAt, &row.UpdatedAt,
			&row.CustomerName, &row.CustomerPhone,
		); err != nil {
			return nil, fmt.Errorf("scan bulk order: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

func (r *BulkOrderRepo) Update(order *entity.BulkOrder) error {
	query := `
		UPDATE bulk_orders
		SET customer_id = $3, quantity = $4, delivery_date = $5, status = $6, price = $7, updated_at = now()
		WHERE business_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		order.BusinessID, order.ID, order.CustomerID, order.Quantity,
		order.DeliveryDate, order.Status, order.Price,
	)
	if err != nil {
		return fmt.Errorf("update bulk order: %w", err)
	}
	return nil
}

func (r *BulkOrderRepo) Delete(businessID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM bulk_orders WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete bulk order: %w", err)
	}
	return nil
}
