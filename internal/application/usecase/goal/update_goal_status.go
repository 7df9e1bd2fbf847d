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

// UpdateGoalStatusInput represents the input for a goal status transition.
type UpdateGoalStatusInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Status entity.GoalStatus
}

// UpdateGoalStatusOutput represents the output of a goal status transition.
type UpdateGoalStatusOutput struct {
	Goal *entity.Goal
}

// UpdateGoalStatusUseCase handles completing, archiving and reactivating a
// goal. Archiving a finance-mirrored goal removes its finance mirror and
// severs the link.
type UpdateGoalStatusUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewUpdateGoalStatusUseCase creates a new UpdateGoalStatusUseCase instance.
func NewUpdateGoalStatusUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *UpdateGoalStatusUseCase {
	return &UpdateGoalStatusUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the status transition.
func (uc *UpdateGoalStatusUseCase) Execute(ctx context.Context, input UpdateGoalStatusInput) (*UpdateGoalStatusOutput, error) {
	if input.Status != entity.GoalStatusActive &&
		input.Status != entity.GoalStatusDone &&
		input.Status != entity.GoalStatusArchived {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"status must be 'active', 'done', or 'archived'",
			nil,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	wasFinancial := goal.IsFinancial()

	// The mirror goes before the status flip so its link is still readable.
	if input.Status == entity.GoalStatusArchived && goal.LinkedFinanceGoalID != nil {
		uc.sync.Mirror(ctx, sync.MirrorCommand{
			Action: sync.ActionRemove,
			Origin: sync.OriginGoal,
			Goal:   goal,
		})
		goal.LinkedFinanceGoalID = nil
	}

	goal.Status = input.Status
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", err)
	}

	invalidateGoalCaches(ctx, uc.cache, input.UserID, wasFinancial)

	return &UpdateGoalStatusOutput{
		Goal: goal,
	}, nil
}
