package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/application/usecase"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

type fakeBusinessRepo struct {
	byOwner map[string]*entity.Business
	created *entity.Business
	updated *entity.Business
}

func (f *fakeBusinessRepo) Create(b *entity.Business) error {
	f.created = b
	return nil
}
func (f *fakeBusinessRepo) GetByID(string) (*entity.Business, error) { return nil, nil }
func (f *fakeBusinessRepo) GetByOwner(ownerID string) (*entity.Business, error) {
	if f.byOwner == nil {
		return nil, nil
	}
	return f.byOwner[ownerID], nil
}
func (f *fakeBusinessRepo) Update(b *entity.Business) error {
	f.updated = b
	return nil
}

type fakeUserWriter struct {
	linkedUserID     string
	linkedBusinessID string
}

func (f *fakeUserWriter) Create(*entity.User) error               { return nil }
func (f *fakeUserWriter) GetByID(string) (*entity.User, error)    { return nil, nil }
func (f *fakeUserWriter) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserWriter) Update(*entity.User) error               { return nil }
func (f *fakeUserWriter) SetOTP(string, string, time.Time) error  { return nil }
func (f *fakeUserWriter) ClearOTP(string, bool) error             { return nil }
func (f *fakeUserWriter) SetBusinessID(userID, businessID string) error {
	f.linkedUserID = userID
	f.linkedBusinessID = businessID
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real, contando invocaciones.
type fakeTxRunner struct {
	business *fakeBusinessRepo
	users    *fakeUserWriter
	runErr   error
	runs     int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
) error) error {
	f.runs++
	if f.runErr != nil {
		return f.runErr
	}
	return fn(f.business, f.users)
}

// El onboarding crea el negocio y asocia el business_id al usuario dentro del
// mismo Run: ambas escrituras o ninguna.
func TestBusinessCreate_OnboardingTransaccional(t *testing.T) {
	txBusiness := &fakeBusinessRepo{}
	txUsers := &fakeUserWriter{}
	tx := &fakeTxRunner{business: txBusiness, users: txUsers}
	uc := usecase.NewBusinessUseCase(&fakeBusinessRepo{}, tx)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateBusinessRequest{
		Name:         "Agua Pura del Valle",
		DefaultPrice: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.runs)

	require.NotNil(t, txBusiness.created)
	assert.Equal(t, "user-1", txBusiness.created.OwnerID)
	assert.Equal(t, "user-1", txUsers.linkedUserID)
	assert.Equal(t, txBusiness.created.ID, txUsers.linkedBusinessID,
		"el usuario debe quedar asociado al negocio recién creado")
	assert.Equal(t, out.ID, txBusiness.created.ID)
}

func TestBusinessCreate_FalloDeTransaccion(t *testing.T) {
	boom := errors.New("deadlock")
	tx := &fakeTxRunner{runErr: boom}
	uc := usecase.NewBusinessUseCase(&fakeBusinessRepo{}, tx)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateBusinessRequest{Name: "X"})
	assert.ErrorIs(t, err, boom)
}

func TestBusinessCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewBusinessUseCase(&fakeBusinessRepo{}, &fakeTxRunner{})

	_, err := uc.Create(context.Background(), "user-1", dto.CreateBusinessRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "user-1", dto.CreateBusinessRequest{
		Name:         "X",
		DefaultPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La actualización es parcial: los campos ausentes no cambian.
func TestBusinessUpdate_Parcial(t *testing.T) {
	repo := &fakeBusinessRepo{byOwner: map[string]*entity.Business{
		"user-1": {
			ID: "biz-1", Name: "Agua Pura", Address: "Calle 1",
			DefaultPrice: decimal.NewFromInt(25), OwnerID: "user-1",
		},
	}}
	uc := usecase.NewBusinessUseCase(repo, &fakeTxRunner{})

	newPrice := decimal.NewFromInt(30)
	out, err := uc.Update("user-1", dto.UpdateBusinessRequest{DefaultPrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Agua Pura", out.Name, "el nombre no enviado no debe cambiar")
	assert.Equal(t, "Calle 1", out.Address)
	assert.True(t, out.DefaultPrice.Equal(newPrice))
	require.NotNil(t, repo.updated)
}

func TestBusinessUpdate_SinNegocio(t *testing.T) {
	uc := usecase.NewBusinessUseCase(&fakeBusinessRepo{}, &fakeTxRunner{})
	_, err := uc.Update("user-1", dto.UpdateBusinessRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
