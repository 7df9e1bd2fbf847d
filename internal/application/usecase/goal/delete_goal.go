package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion. The ledger goes with the goal; a
// linked finance mirror is removed first, best-effort.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return err
	}

	wasFinancial := goal.IsFinancial()

	if goal.LinkedFinanceGoalID != nil {
		uc.sync.Mirror(ctx, sync.MirrorCommand{
			Action: sync.ActionRemove,
			Origin: sync.OriginGoal,
			Goal:   goal,
		})
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	invalidateGoalCaches(ctx, uc.cache, input.UserID, wasFinancial)

	return nil
}
