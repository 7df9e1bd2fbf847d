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

// ToggleCheckinInput represents the input for toggling a habit check-in.
type ToggleCheckinInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	Date    *time.Time // Optional, defaults to today in the user's timezone
	Note    string
	Source  entity.Source
}

// ToggleCheckinOutput represents the output of toggling a habit check-in.
type ToggleCheckinOutput struct {
	Checkin *entity.HabitCheckin
}

// ToggleCheckinUseCase flips a habit's completion for one calendar date. At
// most one row exists per (habit, date): the first toggle inserts a completed
// row, later toggles flip the same row in place.
type ToggleCheckinUseCase struct {
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
	cache     adapter.CacheInvalidator
}

// NewToggleCheckinUseCase creates a new ToggleCheckinUseCase instance.
func NewToggleCheckinUseCase(habitRepo adapter.HabitRepository, userRepo adapter.UserRepository, cache adapter.CacheInvalidator) *ToggleCheckinUseCase {
	return &ToggleCheckinUseCase{
		habitRepo: habitRepo,
		userRepo:  userRepo,
		cache:     cache,
	}
}

// Execute performs the check-in toggle.
func (uc *ToggleCheckinUseCase) Execute(ctx context.Context, input ToggleCheckinInput) (*ToggleCheckinOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	if !habit.Active {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitArchived,
			"cannot check in against an archived habit",
			domainerror.ErrHabitArchived,
		)
	}

	today, err := userToday(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	date := today
	if input.Date != nil {
		date = entity.DateOnly(*input.Date)
	}
	if date.After(today) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeCheckinInFuture,
			"check-in date cannot be in the future",
			domainerror.ErrCheckinInFuture,
		)
	}

	source := input.Source
	if source == "" {
		source = entity.SourceApp
	}

	checkin, err := uc.habitRepo.FindCheckin(ctx, habit.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up check-in: %w", err)
	}

	if checkin == nil {
		checkin = entity.NewHabitCheckin(habit.ID, date, true, input.Note, source)
		if err := uc.habitRepo.CreateCheckin(ctx, checkin); err != nil {
			return nil, fmt.Errorf("failed to create check-in: %w", err)
		}
	} else {
		checkin.Completed = !checkin.Completed
		if input.Note != "" {
			checkin.Note = input.Note
		}
		checkin.Source = source
		checkin.UpdatedAt = time.Now().UTC()
		if err := uc.habitRepo.UpdateCheckin(ctx, checkin); err != nil {
			return nil, fmt.Errorf("failed to update check-in: %w", err)
		}
	}

	invalidateHabitCaches(ctx, uc.cache, input.UserID)

	return &ToggleCheckinOutput{
		Checkin: checkin,
	}, nil
}

// findOwnedHabit loads a habit and verifies it belongs to the requesting user.
func findOwnedHabit(ctx context.Context, repo adapter.HabitRepository, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.FindByID(ctx, habitID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	if habit.UserID != userID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabitAccess,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}

	return habit, nil
}
