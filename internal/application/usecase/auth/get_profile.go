package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// GetProfileInput represents the input for reading the authenticated user's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the profile read result.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase reads the authenticated user's profile and settings.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile read.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, err
	}

	return &GetProfileOutput{
		User: user,
	}, nil
}
