package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// DeleteHabitOutput represents the output of habit deletion.
type DeleteHabitOutput struct {
	Archived bool
}

// DeleteHabitUseCase removes a habit. A habit that already has check-in
// history is archived instead of deleted, preserving the ledger.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.CacheInvalidator
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository, cache adapter.CacheInvalidator) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
		cache:     cache,
	}
}

// Execute performs the habit deletion or archive.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) (*DeleteHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	count, err := uc.habitRepo.CountCheckins(ctx, habit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}

	if count > 0 {
		habit.Active = false
		habit.UpdatedAt = time.Now().UTC()
		if err := uc.habitRepo.Update(ctx, habit); err != nil {
			return nil, fmt.Errorf("failed to archive habit: %w", err)
		}
	} else {
		if err := uc.habitRepo.Delete(ctx, habit.ID); err != nil {
			return nil, fmt.Errorf("failed to delete habit: %w", err)
		}
	}

	invalidateHabitCaches(ctx, uc.cache, input.UserID)

	return &DeleteHabitOutput{
		Archived: count > 0,
	}, nil
}
