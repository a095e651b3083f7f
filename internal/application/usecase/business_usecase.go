package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain"
	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// OnboardingTxRunner ejecuta el alta de negocio y la asociación al usuario en
// una transacción: o se completan ambas escrituras o ninguna.
type OnboardingTxRunner interface {
	Run(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		userRepo repository.UserRepository,
	) error) error
}

// BusinessUseCase aplica reglas de negocio para el tenant (onboarding y perfil).
type BusinessUseCase struct {
	repo repository.BusinessRepository
	tx   OnboardingTxRunner
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, tx OnboardingTxRunner) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, tx: tx}
}

// Create completa el onboarding: crea el negocio y fija business_id en el
// usuario dentro de una transacción. Desde ese momento el usuario puede operar
// los libros. El esquema no impone un negocio por dueño; la app resuelve por
// lookup de owner.
func (uc *BusinessUseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DefaultPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	business := &entity.Business{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Address:      in.Address,
		Phone:        in.Phone,
		DefaultPrice: in.DefaultPrice,
		OwnerID:      userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.tx.Run(ctx, func(businessRepo repository.BusinessRepository, userRepo repository.UserRepository) error {
		if err := businessRepo.Create(business); err != nil {
			return err
		}
		return userRepo.SetBusinessID(userID, business.ID)
	})
	if err != nil {
		return nil, err
	}
	return businessToResponse(business), nil
}

// GetByOwner devuelve el negocio del usuario autenticado.
func (uc *BusinessUseCase) GetByOwner(userID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return businessToResponse(business), nil
}

// Update actualiza el perfil del negocio: solo cambian los campos presentes.
func (uc *BusinessUseCase) Update(userID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		business.Name = *in.Name
	}
	if in.Address != nil {
		business.Address = *in.Address
	}
	if in.Phone != nil {
		business.Phone = *in.Phone
	}
	if in.DefaultPrice != nil {
		if in.DefaultPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		business.DefaultPrice = *in.DefaultPrice
	}
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return businessToResponse(business), nil
}

func businessToResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		Address:      b.Address,
		Phone:        b.Phone,
		DefaultPrice: b.DefaultPrice,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
