package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, phone, COALESCE(password_hash, ''), role,
	COALESCE(business_id::TEXT, ''), COALESCE(otp_hash, ''), otp_expires_at, is_verified,
	created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, business_id, otp_hash, otp_expires_at, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, '')::UUID, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role,
		user.BusinessID, user.OTPHash, user.OTPExpiresAt, user.IsVerified,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user")
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// Update actualiza los datos básicos del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, role = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.Role, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetOTP guarda el hash y la expiración del código vigente.
func (r *UserRepo) SetOTP(userID, otpHash string, expiresAt time.Time) error {
	query := `
		UPDATE users SET otp_hash = $2, otp_expires_at = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, otpHash, expiresAt)
	if err != nil {
		return fmt.Errorf("set otp: %w", err)
	}
	return nil
}

// ClearOTP borra el código pendiente (un solo uso); con verified=true también
// marca el email como verificado en el mismo write.
func (r *UserRepo) ClearOTP(userID string, verified bool) error {
	query := `
		UPDATE users SET otp_hash = NULL, otp_expires_at = NULL,
			is_verified = is_verified OR $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, verified)
	if err != nil {
		return fmt.Errorf("clear otp: %w", err)
	}
	return nil
}

// SetBusinessID asocia el negocio creado en onboarding al usuario.
func (r *UserRepo) SetBusinessID(userID, businessID string) error {
	query := `UPDATE users SET business_id = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, businessID)
	if err != nil {
		return fmt.Errorf("set business_id: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.BusinessID, &u.OTPHash, &u.OTPExpiresAt, &u.IsVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
