package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguatrack/aguatrack-api/internal/application/auth"
	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/pkg/otp"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de repositorio y correo
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) SetOTP(userID, otpHash string, expiresAt time.Time) error {
	for _, u := range f.byEmail {
		if u.ID == userID {
			u.OTPHash = otpHash
			u.OTPExpiresAt = &expiresAt
		}
	}
	return nil
}

func (f *fakeUserRepo) ClearOTP(userID string, verified bool) error {
	for _, u := range f.byEmail {
		if u.ID == userID {
			u.OTPHash = ""
			u.OTPExpiresAt = nil
			if verified {
				u.IsVerified = true
			}
		}
	}
	return nil
}

func (f *fakeUserRepo) SetBusinessID(userID, businessID string) error {
	for _, u := range f.byEmail {
		if u.ID == userID {
			u.BusinessID = businessID
		}
	}
	return nil
}

type fakeBusinessRepo struct {
	byID map[string]*entity.Business
}

func (f *fakeBusinessRepo) Create(*entity.Business) error { return nil }
func (f *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	if f.byID == nil {
		return nil, nil
	}
	return f.byID[id], nil
}
func (f *fakeBusinessRepo) GetByOwner(string) (*entity.Business, error) { return nil, nil }
func (f *fakeBusinessRepo) Update(*entity.Business) error               { return nil }

type fakeMail struct {
	sentCodes []string
	otpErr    error
}

func (f *fakeMail) SendOTP(_, _, code string) error {
	if f.otpErr != nil {
		return f.otpErr
	}
	f.sentCodes = append(f.sentCodes, code)
	return nil
}

func (f *fakeMail) SendWelcome(_, _ string) error { return nil }

func newUC(users *fakeUserRepo, mail *fakeMail) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, &fakeBusinessRepo{}, mail, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "aguatrack-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// SendOTP
// ──────────────────────────────────────────────────────────────────────────────

// El registro crea el usuario sin verificar, guarda el hash del código (nunca
// el código en claro) y lo envía por correo.
func TestSendOTP_RegistroCreaUsuarioConHash(t *testing.T) {
	users := newFakeUserRepo()
	mail := &fakeMail{}
	uc := newUC(users, mail)

	out, err := uc.SendOTP(dto.SendOTPRequest{
		Email: "ana@example.com",
		Name:  "Ana",
		Phone: "555-0102",
		Type:  dto.OTPTypeRegister,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)

	user := users.byEmail["ana@example.com"]
	require.NotNil(t, user)
	assert.False(t, user.IsVerified)
	require.Len(t, mail.sentCodes, 1)
	code := mail.sentCodes[0]
	assert.Len(t, code, 6)
	assert.NotEqual(t, code, user.OTPHash, "el código nunca se guarda en claro")
	assert.Equal(t, otp.Hash(code), user.OTPHash)
	require.NotNil(t, user.OTPExpiresAt)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *user.OTPExpiresAt, time.Minute)
}

func TestSendOTP_RegistroConEmailExistente(t *testing.T) {
	users := newFakeUserRepo()
	users.byEmail["ana@example.com"] = &entity.User{ID: "u-1", Email: "ana@example.com"}
	uc := newUC(users, &fakeMail{})

	_, err := uc.SendOTP(dto.SendOTPRequest{
		Email: "ana@example.com", Name: "Ana", Phone: "555", Type: dto.OTPTypeRegister,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSendOTP_RegistroSinNombreNiTelefono(t *testing.T) {
	uc := newUC(newFakeUserRepo(), &fakeMail{})
	_, err := uc.SendOTP(dto.SendOTPRequest{Email: "ana@example.com", Type: dto.OTPTypeRegister})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El login refresca el código del usuario existente.
func TestSendOTP_LoginRefrescaCodigo(t *testing.T) {
	users := newFakeUserRepo()
	users.byEmail["ana@example.com"] = &entity.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"}
	mail := &fakeMail{}
	uc := newUC(users, mail)

	_, err := uc.SendOTP(dto.SendOTPRequest{Email: "ana@example.com", Type: dto.OTPTypeLogin})
	require.NoError(t, err)
	require.Len(t, mail.sentCodes, 1)
	assert.Equal(t, otp.Hash(mail.sentCodes[0]), users.byEmail["ana@example.com"].OTPHash)
}

func TestSendOTP_LoginSinCuenta(t *testing.T) {
	uc := newUC(newFakeUserRepo(), &fakeMail{})
	_, err := uc.SendOTP(dto.SendOTPRequest{Email: "nadie@example.com", Type: dto.OTPTypeLogin})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un fallo del SMTP se reporta como ErrUpstream: reintentable, sin estado roto.
func TestSendOTP_FalloDeCorreo(t *testing.T) {
	users := newFakeUserRepo()
	users.byEmail["ana@example.com"] = &entity.User{ID: "u-1", Email: "ana@example.com"}
	mail := &fakeMail{otpErr: errors.New("smtp timeout")}
	uc := newUC(users, mail)

	_, err := uc.SendOTP(dto.SendOTPRequest{Email: "ana@example.com", Type: dto.OTPTypeLogin})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación del código
// ──────────────────────────────────────────────────────────────────────────────

func seedUserWithOTP(users *fakeUserRepo, code string, expiresAt time.Time) *entity.User {
	user := &entity.User{
		ID:           "u-1",
		Email:        "ana@example.com",
		Name:         "Ana",
		OTPHash:      otp.Hash(code),
		OTPExpiresAt: &expiresAt,
	}
	users.byEmail[user.Email] = user
	return user
}

// El código correcto verifica la cuenta, limpia el OTP y emite sesión.
func TestVerifyRegister_CodigoCorrecto(t *testing.T) {
	users := newFakeUserRepo()
	seedUserWithOTP(users, "123456", time.Now().Add(5*time.Minute))
	uc := newUC(users, &fakeMail{})

	session, err := uc.VerifyRegister(dto.VerifyOTPRequest{Email: "ana@example.com", OTP: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Empty(t, session.BusinessID, "antes del onboarding la sesión no lleva negocio")

	user := users.byEmail["ana@example.com"]
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.OTPHash, "el OTP es de un solo uso")
}

// Reusar el mismo código tras verificarlo falla: un solo uso.
func TestVerifyLogin_CodigoDeUnSoloUso(t *testing.T) {
	users := newFakeUserRepo()
	seedUserWithOTP(users, "123456", time.Now().Add(5*time.Minute))
	uc := newUC(users, &fakeMail{})

	_, err := uc.VerifyLogin(dto.VerifyOTPRequest{Email: "ana@example.com", OTP: "123456"})
	require.NoError(t, err)

	_, err = uc.VerifyLogin(dto.VerifyOTPRequest{Email: "ana@example.com", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrOTPExpired)
}

func TestVerifyLogin_CodigoExpirado(t *testing.T) {
	users := newFakeUserRepo()
	seedUserWithOTP(users, "123456", time.Now().Add(-time.Minute))
	uc := newUC(users, &fakeMail{})

	_, err := uc.VerifyLogin(dto.VerifyOTPRequest{Email: "ana@example.com", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrOTPExpired)
}

func TestVerifyLogin_CodigoIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	seedUserWithOTP(users, "123456", time.Now().Add(5*time.Minute))
	uc := newUC(users, &fakeMail{})

	_, err := uc.VerifyLogin(dto.VerifyOTPRequest{Email: "ana@example.com", OTP: "654321"})
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
}

func TestVerifyLogin_UsuarioInexistente(t *testing.T) {
	uc := newUC(newFakeUserRepo(), &fakeMail{})
	_, err := uc.VerifyLogin(dto.VerifyOTPRequest{Email: "nadie@example.com", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Variante legacy con contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterYLogin_Legacy(t *testing.T) {
	users := newFakeUserRepo()
	uc := newUC(users, &fakeMail{})

	session, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	session, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioSoloOTP(t *testing.T) {
	users := newFakeUserRepo()
	// Usuario creado por la vía OTP: sin contraseña.
	users.byEmail["ana@example.com"] = &entity.User{ID: "u-1", Email: "ana@example.com"}
	uc := newUC(users, &fakeMail{})

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
