// Package habit contains habit and check-in use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID       uuid.UUID
	Name         string
	Category     string
	Frequency    *entity.HabitFrequency // Optional, defaults to daily
	WeeklyTarget *int                   // Optional, defaults to 7
	Color        string
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.CacheInvalidator
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, cache adapter.CacheInvalidator) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		cache:     cache,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"name is required",
			nil,
		)
	}

	frequency := entity.HabitFrequencyDaily
	if input.Frequency != nil {
		if *input.Frequency != entity.HabitFrequencyDaily && *input.Frequency != entity.HabitFrequencyWeekly {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily' or 'weekly'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		frequency = *input.Frequency
	}

	weeklyTarget := 7
	if input.WeeklyTarget != nil {
		if *input.WeeklyTarget < 1 || *input.WeeklyTarget > 7 {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidWeeklyTarget,
				"weekly target must be between 1 and 7",
				domainerror.ErrInvalidWeeklyTarget,
			)
		}
		weeklyTarget = *input.WeeklyTarget
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultHabitColor
	}

	habit := entity.NewHabit(input.UserID, input.Name, input.Category, frequency, weeklyTarget, color)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	invalidateHabitCaches(ctx, uc.cache, input.UserID)

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
