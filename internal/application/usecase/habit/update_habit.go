package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update. Nil pointers leave
// the corresponding field unchanged.
type UpdateHabitInput struct {
	UserID       uuid.UUID
	HabitID      uuid.UUID
	Name         *string
	Category     *string
	Frequency    *entity.HabitFrequency
	WeeklyTarget *int
	Color        *string
	Active       *bool
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic, including archive and
// reactivate through the Active flag.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.CacheInvalidator
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository, cache adapter.CacheInvalidator) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
		cache:     cache,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitFields,
				"name cannot be empty",
				nil,
			)
		}
		habit.Name = *input.Name
	}
	if input.Category != nil {
		habit.Category = *input.Category
	}
	if input.Frequency != nil {
		if *input.Frequency != entity.HabitFrequencyDaily && *input.Frequency != entity.HabitFrequencyWeekly {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily' or 'weekly'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		habit.Frequency = *input.Frequency
	}
	if input.WeeklyTarget != nil {
		if *input.WeeklyTarget < 1 || *input.WeeklyTarget > 7 {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidWeeklyTarget,
				"weekly target must be between 1 and 7",
				domainerror.ErrInvalidWeeklyTarget,
			)
		}
		habit.WeeklyTarget = *input.WeeklyTarget
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}
	if input.Active != nil {
		habit.Active = *input.Active
	}
	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	invalidateHabitCaches(ctx, uc.cache, input.UserID)

	return &UpdateHabitOutput{
		Habit: habit,
	}, nil
}
