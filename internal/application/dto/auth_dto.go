package dto

import "time"

// Tipos de solicitud de OTP.
const (
	OTPTypeRegister = "register"
	OTPTypeLogin    = "login"
)

// SendOTPRequest solicitud de envío de código por email.
// Name y Phone son obligatorios solo cuando Type es register.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Type  string `json:"type" validate:"required,oneof=register login"`
}

// SendOTPResponse confirmación del envío.
type SendOTPResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

// VerifyOTPRequest verificación de un código recibido por email.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// RegisterRequest registro legacy con contraseña.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest login legacy con contraseña.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse sesión emitida tras cualquier variante de autenticación.
// BusinessID vacío significa onboarding pendiente: el frontend debe llevar al
// usuario a crear su negocio, no es un error.
type SessionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BusinessID string `json:"businessId,omitempty"`
	Token      string `json:"token"`
}

// UserResponse datos del usuario autenticado (GET /me).
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Role       string            `json:"role"`
	BusinessID string            `json:"businessId,omitempty"`
	IsVerified bool              `json:"isVerified"`
	Business   *BusinessResponse `json:"business,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}
