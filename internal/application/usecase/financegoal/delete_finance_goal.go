package financegoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
)

// DeleteFinanceGoalInput represents the input for finance goal deletion.
type DeleteFinanceGoalInput struct {
	UserID        uuid.UUID
	FinanceGoalID uuid.UUID
}

// DeleteFinanceGoalUseCase deletes a finance goal. A mirrored goal is archived
// first, best-effort, so the unified goals view keeps its history.
type DeleteFinanceGoalUseCase struct {
	financeGoalRepo adapter.FinanceGoalRepository
	sync            *sync.Orchestrator
	cache           adapter.CacheInvalidator
}

// NewDeleteFinanceGoalUseCase creates a new DeleteFinanceGoalUseCase instance.
func NewDeleteFinanceGoalUseCase(financeGoalRepo adapter.FinanceGoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *DeleteFinanceGoalUseCase {
	return &DeleteFinanceGoalUseCase{
		financeGoalRepo: financeGoalRepo,
		sync:            syncOrchestrator,
		cache:           cache,
	}
}

// Execute performs the finance goal deletion.
func (uc *DeleteFinanceGoalUseCase) Execute(ctx context.Context, input DeleteFinanceGoalInput) error {
	financeGoal, err := findOwnedFinanceGoal(ctx, uc.financeGoalRepo, input.UserID, input.FinanceGoalID)
	if err != nil {
		return err
	}

	if financeGoal.LinkedGoalID != nil {
		uc.sync.Mirror(ctx, sync.MirrorCommand{
			Action:      sync.ActionRemove,
			Origin:      sync.OriginFinanceGoal,
			FinanceGoal: financeGoal,
		})
	}

	if err := uc.financeGoalRepo.Delete(ctx, financeGoal.ID); err != nil {
		return fmt.Errorf("failed to delete finance goal: %w", err)
	}

	invalidateFinanceGoalCaches(ctx, uc.cache, input.UserID)

	return nil
}
