package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/habit"
	"github.com/lifehub/backend/internal/domain/entity"
)

// HabitsSummaryInput represents the input for the habits-today summary.
type HabitsSummaryInput struct {
	UserID uuid.UUID
}

// HabitsSummaryOutput represents the habits-today summary read model.
type HabitsSummaryOutput struct {
	Habits         []*entity.HabitWithStats
	TotalActive    int
	CompletedToday int
	BestStreak     int
	CacheVersion   int64
}

// HabitsSummaryUseCase builds the habits-today dashboard card on top of the
// habit listing, which already resolves "today" in the user's timezone.
type HabitsSummaryUseCase struct {
	listHabits *habit.ListHabitsUseCase
	cache      adapter.CacheInvalidator
}

// NewHabitsSummaryUseCase creates a new HabitsSummaryUseCase instance.
func NewHabitsSummaryUseCase(listHabits *habit.ListHabitsUseCase, cache adapter.CacheInvalidator) *HabitsSummaryUseCase {
	return &HabitsSummaryUseCase{
		listHabits: listHabits,
		cache:      cache,
	}
}

// Execute builds the summary.
func (uc *HabitsSummaryUseCase) Execute(ctx context.Context, input HabitsSummaryInput) (*HabitsSummaryOutput, error) {
	listed, err := uc.listHabits.Execute(ctx, habit.ListHabitsInput{
		UserID:     input.UserID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	output := &HabitsSummaryOutput{
		Habits:      listed.Habits,
		TotalActive: len(listed.Habits),
	}
	for _, h := range listed.Habits {
		if h.CompletedToday {
			output.CompletedToday++
		}
		if h.Streak > output.BestStreak {
			output.BestStreak = h.Streak
		}
	}

	if uc.cache != nil {
		version, err := uc.cache.Version(ctx, input.UserID, adapter.CacheGroupHabitsTodaySummary)
		if err == nil {
			output.CacheVersion = version
		}
	}

	return output, nil
}
