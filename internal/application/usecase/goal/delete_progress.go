package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// DeleteProgressInput represents the input for removing a progress entry.
type DeleteProgressInput struct {
	UserID     uuid.UUID
	GoalID     uuid.UUID
	ProgressID uuid.UUID
}

// DeleteProgressOutput represents the output of removing a progress entry.
type DeleteProgressOutput struct {
	Goal *entity.Goal
}

// DeleteProgressUseCase removes a ledger entry and decrements the goal's
// CurrentValue by the entry's delta in one database transaction. A goal that
// drops back below its target returns to active.
type DeleteProgressUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewDeleteProgressUseCase creates a new DeleteProgressUseCase instance.
func NewDeleteProgressUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *DeleteProgressUseCase {
	return &DeleteProgressUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the progress removal.
func (uc *DeleteProgressUseCase) Execute(ctx context.Context, input DeleteProgressInput) (*DeleteProgressOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	entry, err := uc.goalRepo.FindProgressByID(ctx, input.ProgressID)
	if err != nil || entry.GoalID != goal.ID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeProgressNotFound,
			"progress entry not found",
			domainerror.ErrProgressNotFound,
		)
	}

	if err := uc.goalRepo.RemoveProgress(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to remove progress: %w", err)
	}

	goal, err = uc.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload goal: %w", err)
	}

	if goal.Status == entity.GoalStatusDone && goal.TargetValue != nil && goal.CurrentValue < *goal.TargetValue {
		goal.Status = entity.GoalStatusActive
		goal.UpdatedAt = time.Now().UTC()
		if err := uc.goalRepo.Update(ctx, goal); err != nil {
			return nil, fmt.Errorf("failed to reactivate goal: %w", err)
		}
	}

	uc.sync.SyncGoalProgress(ctx, goal)

	invalidateGoalCaches(ctx, uc.cache, input.UserID, goal.IsFinancial())

	return &DeleteProgressOutput{
		Goal: goal,
	}, nil
}
