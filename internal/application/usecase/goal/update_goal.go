package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update. Nil pointers leave the
// corresponding field unchanged.
type UpdateGoalInput struct {
	UserID      uuid.UUID
	GoalID      uuid.UUID
	Title       *string
	Description *string
	TargetValue *float64
	Unit        *string
	DueDate     *time.Time
	ClearDue    bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Title, target and due-date
// changes propagate to a linked finance goal through the sync orchestrator.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	title := goal.Title
	if input.Title != nil {
		title = *input.Title
	}
	targetValue := goal.TargetValue
	if input.TargetValue != nil {
		targetValue = input.TargetValue
	}
	if err := validateGoalFields(goal.Type, title, targetValue); err != nil {
		return nil, err
	}

	goal.Title = title
	goal.TargetValue = targetValue
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Unit != nil {
		goal.Unit = *input.Unit
	}
	switch {
	case input.ClearDue:
		goal.DueDate = nil
	case input.DueDate != nil:
		goal.DueDate = input.DueDate
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	uc.sync.Mirror(ctx, sync.MirrorCommand{
		Action: sync.ActionUpdate,
		Origin: sync.OriginGoal,
		Goal:   goal,
	})

	invalidateGoalCaches(ctx, uc.cache, input.UserID, goal.IsFinancial())

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
