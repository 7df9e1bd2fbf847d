package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/progress"
)

// Check-in history window used to derive streaks.
const statsLookbackDays = 365

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID     uuid.UUID
	OnlyActive bool
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.HabitWithStats
}

// ListHabitsUseCase lists a user's habits with streak and completion stats.
// "Today" is resolved in the user's timezone, not the server's.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository, userRepo adapter.UserRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the habit listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	today, err := userToday(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID, input.OnlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	result := make([]*entity.HabitWithStats, 0, len(habits))
	for _, h := range habits {
		stats, err := uc.habitStats(ctx, h, today)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}

	return &ListHabitsOutput{
		Habits: result,
	}, nil
}

// habitStats derives streak, weekly rate and today's completion for one habit.
func (uc *ListHabitsUseCase) habitStats(ctx context.Context, h *entity.Habit, today time.Time) (*entity.HabitWithStats, error) {
	from := today.AddDate(0, 0, -statsLookbackDays)
	checkins, err := uc.habitRepo.FindCheckinsByHabit(ctx, h.ID, from, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}

	completedToday := false
	for _, c := range checkins {
		if c.Date.Equal(today) && c.Completed {
			completedToday = true
			break
		}
	}

	return &entity.HabitWithStats{
		Habit:          h,
		Streak:         progress.Streak(checkins, today),
		WeeklyRate:     progress.WeeklyRate(checkins, today),
		CompletedToday: completedToday,
	}, nil
}

// userToday returns the current calendar date in the user's timezone,
// normalized to midnight UTC for date-only comparison.
func userToday(ctx context.Context, userRepo adapter.UserRepository, userID uuid.UUID) (time.Time, error) {
	now := time.Now().UTC()
	if userRepo == nil {
		return entity.DateOnly(now), nil
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load user: %w", err)
	}

	return entity.DateOnly(now.In(user.Location())), nil
}
