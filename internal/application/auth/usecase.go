// Package auth implementa las dos variantes de autenticación detrás de un
// mismo contrato de emisión de sesión: OTP por email (recomendada) y la
// variante legacy con contraseña.
package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
	"github.com/aguatrack/aguatrack-api/pkg/jwt"
	"github.com/aguatrack/aguatrack-api/pkg/otp"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: OTP, legacy password y sesión.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	mail         MailSender
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, businessRepo repository.BusinessRepository, mail MailSender, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, businessRepo: businessRepo, mail: mail, jwtCfg: jwtCfg}
}

// SendOTP genera un código de 6 dígitos, guarda su hash con expiración de 10
// minutos y lo envía por email. Con type=register crea el usuario sin
// verificar; con type=login refresca el código del usuario existente.
// Un fallo del correo se reporta como domain.ErrUpstream: es reintentable y
// no deja estado corrupto en los libros.
func (uc *AuthUseCase) SendOTP(in dto.SendOTPRequest) (*dto.SendOTPResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}

	code, err := otp.Generate()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(otp.ValidityMinutes * time.Minute)
	name := in.Name

	switch in.Type {
	case dto.OTPTypeRegister:
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		if in.Name == "" || in.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			Role:         entity.RoleOwner,
			OTPHash:      otp.Hash(code),
			OTPExpiresAt: &expiresAt,
			IsVerified:   false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
	case dto.OTPTypeLogin:
		if existing == nil {
			return nil, domain.ErrUserNotFound
		}
		name = existing.Name
		if err := uc.userRepo.SetOTP(existing.ID, otp.Hash(code), expiresAt); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := uc.mail.SendOTP(in.Email, name, code); err != nil {
		return nil, fmt.Errorf("%w: envío de OTP: %v", domain.ErrUpstream, err)
	}
	return &dto.SendOTPResponse{
		Message:   "código enviado al correo",
		Email:     in.Email,
		ExpiresIn: "10 minutes",
	}, nil
}

// VerifyRegister valida el código de registro, marca el usuario como
// verificado, limpia el OTP (un solo uso) y emite la sesión. El correo de
// bienvenida se envía en segundo plano sin bloquear la respuesta.
func (uc *AuthUseCase) VerifyRegister(in dto.VerifyOTPRequest) (*dto.SessionResponse, error) {
	user, err := uc.checkOTP(in.Email, in.OTP)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.ClearOTP(user.ID, true); err != nil {
		return nil, err
	}
	go func() { _ = uc.mail.SendWelcome(user.Email, user.Name) }()
	return uc.issueSession(user)
}

// VerifyLogin valida el código de login, limpia el OTP y emite la sesión.
func (uc *AuthUseCase) VerifyLogin(in dto.VerifyOTPRequest) (*dto.SessionResponse, error) {
	user, err := uc.checkOTP(in.Email, in.OTP)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.ClearOTP(user.ID, false); err != nil {
		return nil, err
	}
	return uc.issueSession(user)
}

// checkOTP resuelve el usuario y valida expiración y hash del código.
func (uc *AuthUseCase) checkOTP(email, code string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OTPHash == "" || user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(time.Now()) {
		return nil, domain.ErrOTPExpired
	}
	if !otp.Verify(code, user.OTPHash) {
		return nil, domain.ErrOTPInvalid
	}
	return user, nil
}

// Register registro legacy con email y contraseña (compatibilidad).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.SessionResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Email,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		IsVerified:   true, // la variante con contraseña no pasa por OTP
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueSession(user)
}

// Login login legacy con email y contraseña (compatibilidad).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueSession(user)
}

// Me devuelve el usuario autenticado con su negocio (si completó onboarding).
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		BusinessID: user.BusinessID,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
	if user.BusinessID != "" {
		business, err := uc.businessRepo.GetByID(user.BusinessID)
		if err != nil {
			return nil, err
		}
		if business != nil {
			resp.Business = &dto.BusinessResponse{
				ID:           business.ID,
				Name:         business.Name,
				Address:      business.Address,
				Phone:        business.Phone,
				DefaultPrice: business.DefaultPrice,
				CreatedAt:    business.CreatedAt,
				UpdatedAt:    business.UpdatedAt,
			}
		}
	}
	return resp, nil
}

func (uc *AuthUseCase) issueSession(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		BusinessID: user.BusinessID,
		Token:      token,
	}, nil
}
