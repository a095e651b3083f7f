package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aguatrack/aguatrack-api/internal/application/auth"
	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
)

// AuthHandler maneja el flujo OTP por email, el login legacy y /me.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SendOTP POST /api/auth/otp/send
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var in dto.SendOTPRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.SendOTP(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "para registrarte necesitamos nombre y teléfono"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado; usa el login"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "no hay cuenta con ese email; regístrate primero"})
		case errors.Is(err, domain.ErrUpstream):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MAIL_FAILED", Message: "no pudimos enviar el correo, intenta de nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VerifyRegister POST /api/auth/otp/verify-register
func (h *AuthHandler) VerifyRegister(c *fiber.Ctx) error {
	return h.verify(c, h.uc.VerifyRegister)
}

// VerifyLogin POST /api/auth/otp/verify-login
func (h *AuthHandler) VerifyLogin(c *fiber.Ctx) error {
	return h.verify(c, h.uc.VerifyLogin)
}

func (h *AuthHandler) verify(c *fiber.Ctx, fn func(dto.VerifyOTPRequest) (*dto.SessionResponse, error)) error {
	var in dto.VerifyOTPRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	session, err := fn(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "no hay cuenta con ese email"})
		case errors.Is(err, domain.ErrOTPExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "OTP_EXPIRED", Message: "el código expiró, solicita uno nuevo"})
		case errors.Is(err, domain.ErrOTPInvalid):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "OTP_INVALID", Message: "código incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(session)
}

// Register POST /api/auth/register (variante con contraseña)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	session, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login POST /api/auth/login (variante con contraseña)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	session, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(session)
}

// Me GET /api/auth/me (protegido)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}
