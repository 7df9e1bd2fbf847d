// Package goal contains goal and progress-ledger use cases.
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

const maxGoalTitleLength = 255

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Type        entity.GoalType
	Title       string
	Description string
	TargetValue *float64
	Unit        string
	DueDate     *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic. Financial and savings goals
// get a finance-goal mirror created through the sync orchestrator.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.Type, input.Title, input.TargetValue); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Type,
		input.Title,
		input.Description,
		input.TargetValue,
		input.Unit,
		input.DueDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	// Mirror write is best-effort; the goal itself is already durable.
	uc.sync.Mirror(ctx, sync.MirrorCommand{
		Action: sync.ActionCreate,
		Origin: sync.OriginGoal,
		Goal:   goal,
	})

	invalidateGoalCaches(ctx, uc.cache, input.UserID, goal.IsFinancial())

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// validateGoalFields checks the fields shared by goal creation and update.
func validateGoalFields(goalType entity.GoalType, title string, targetValue *float64) error {
	if !isValidGoalType(goalType) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"invalid goal type",
			domainerror.ErrInvalidGoalType,
		)
	}

	if title == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title is required",
			nil,
		)
	}
	if len(title) > maxGoalTitleLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalTitleTooLong,
			"goal title must be at most 255 characters",
			domainerror.ErrGoalTitleTooLong,
		)
	}

	if targetValue != nil && *targetValue <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}

	return nil
}

// isValidGoalType validates the goal type.
func isValidGoalType(goalType entity.GoalType) bool {
	switch goalType {
	case entity.GoalTypeCustom, entity.GoalTypeFinancial, entity.GoalTypeSavings,
		entity.GoalTypeHabit, entity.GoalTypeTask, entity.GoalTypeReading,
		entity.GoalTypeWeight, entity.GoalTypeExercise, entity.GoalTypeStudy,
		entity.GoalTypeHealth:
		return true
	}
	return false
}
