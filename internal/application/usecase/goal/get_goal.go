package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/domain/progress"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal      *entity.Goal
	Progress  int
	IsOverdue bool
	Entries   []*entity.GoalProgress
}

// GetGoalUseCase handles fetching a goal with its progress ledger.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal fetch.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.goalRepo.FindProgressByGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress ledger: %w", err)
	}

	return &GetGoalOutput{
		Goal:      goal,
		Progress:  progress.Calculate(goal.CurrentValue, goal.TargetValue),
		IsOverdue: progress.IsGoalOverdue(goal, time.Now().UTC()),
		Entries:   entries,
	}, nil
}

// findOwnedGoal loads a goal and verifies it belongs to the requesting user.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, userID, goalID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}
