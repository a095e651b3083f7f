package repository

import (
	"time"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// SetOTP guarda el hash y la expiración del código vigente del usuario.
	SetOTP(userID, otpHash string, expiresAt time.Time) error
	// ClearOTP borra el código pendiente; con verified=true además marca el
	// email como verificado (un solo write, el OTP es de un solo uso).
	ClearOTP(userID string, verified bool) error
	// SetBusinessID asocia el negocio creado en onboarding al usuario.
	SetBusinessID(userID, businessID string) error
}
