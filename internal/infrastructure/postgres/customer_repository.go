package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, business_id, name, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.BusinessID, customer.Name, customer.Phone, customer.Address,
		customer.Status, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByBusinessAndID obtiene un cliente dentro de la partición del negocio.
// Un cliente de otro negocio se resuelve como no-encontrado (nil, nil).
func (r *CustomerRepo) GetByBusinessAndID(businessID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, business_id, name, phone, address, status, created_at, updated_at
		FROM customers WHERE business_id = $1 AND id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, businessID, id).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista los clientes del negocio ordenados por nombre.
func (r *CustomerRepo) ListByBusiness(businessID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, business_id, name, phone, address, status, created_at, updated_at
		FROM customers WHERE business_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, phone = $4, address = $5, status = $6, updated_at = $7
		WHERE business_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		customer.BusinessID, customer.ID, customer.Name, customer.Phone, customer.Address,
		customer.Status, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Las entregas y logs históricos no se tocan.
func (r *CustomerRepo) Delete(businessID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
