package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/progress"
)

// GoalWithProgress pairs a goal with its derived progress fields.
type GoalWithProgress struct {
	Goal      *entity.Goal
	Progress  int
	IsOverdue bool
}

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID     uuid.UUID
	OnlyActive bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListGoalsUseCase handles listing a user's goals with derived progress.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	var (
		goals []*entity.Goal
		err   error
	)
	if input.OnlyActive {
		goals, err = uc.goalRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		goals, err = uc.goalRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	today := time.Now().UTC()
	result := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		result = append(result, GoalWithProgress{
			Goal:      g,
			Progress:  progress.Calculate(g.CurrentValue, g.TargetValue),
			IsOverdue: progress.IsGoalOverdue(g, today),
		})
	}

	return &ListGoalsOutput{
		Goals: result,
	}, nil
}
