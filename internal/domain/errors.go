package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBusinessRequired   = errors.New("el usuario no ha completado el onboarding del negocio")
	ErrOTPExpired         = errors.New("el código OTP expiró")
	ErrOTPInvalid         = errors.New("código OTP inválido")
	ErrUpstream           = errors.New("fallo de un servicio externo")
)
