package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, address, phone, default_price, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Address, business.Phone,
		business.DefaultPrice, business.OwnerID, business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `
		SELECT id, name, address, phone, default_price, owner_id, created_at, updated_at
		FROM businesses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get business")
}

// GetByOwner obtiene el negocio de un dueño (el más antiguo si hubiera varios).
func (r *BusinessRepo) GetByOwner(ownerID string) (*entity.Business, error) {
	query := `
		SELECT id, name, address, phone, default_price, owner_id, created_at, updated_at
		FROM businesses WHERE owner_id = $1 ORDER BY created_at LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID), "get business by owner")
}

// Update actualiza el perfil del negocio.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, address = $3, phone = $4, default_price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Address, business.Phone,
		business.DefaultPrice, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

func (r *BusinessRepo) scanOne(row pgx.Row, op string) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.DefaultPrice, &b.OwnerID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
