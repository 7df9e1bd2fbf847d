package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for profile update. Nil pointers
// leave the corresponding setting unchanged.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	Timezone        *string
	WhatsAppNumber  *string
	MilestoneAlerts *bool
	HabitReminders  *bool
}

// UpdateProfileOutput represents the profile update result.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles updates to the user's profile and settings.
// Timezone changes shift every date-only computation (streaks, "today",
// overdue checks) for the user.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
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

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"name cannot be empty",
				nil,
			)
		}
		user.Name = *input.Name
	}

	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidTimezone,
				"timezone must be a valid IANA name",
				domainerror.ErrInvalidTimezone,
			)
		}
		user.Timezone = *input.Timezone
	}

	if input.WhatsAppNumber != nil {
		user.WhatsAppNumber = *input.WhatsAppNumber
	}
	if input.MilestoneAlerts != nil {
		user.MilestoneAlerts = *input.MilestoneAlerts
	}
	if input.HabitReminders != nil {
		user.HabitReminders = *input.HabitReminders
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{
		User: user,
	}, nil
}
