package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// User representa un operador del sistema (dueño del negocio o admin).
//
// Ciclo de vida: se crea sin verificar durante el envío del OTP de registro,
// pasa a verificado al confirmar el código, y obtiene BusinessID solo al
// completar el onboarding. Un usuario verificado con BusinessID vacío es un
// estado intermedio válido: el caller debe redirigir a onboarding, no tratarlo
// como error.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string // vacío para cuentas solo-OTP (legacy: login con contraseña)
	Role         string // admin | owner
	BusinessID   string // vacío hasta completar onboarding
	OTPHash      string // SHA-256 hex del código vigente; vacío si no hay OTP pendiente
	OTPExpiresAt *time.Time
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
