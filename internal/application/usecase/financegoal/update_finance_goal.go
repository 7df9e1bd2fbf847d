package financegoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// UpdateFinanceGoalInput represents the input for finance goal update. Nil
// pointers leave the corresponding field unchanged.
type UpdateFinanceGoalInput struct {
	UserID        uuid.UUID
	FinanceGoalID uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal // Manual correction
	Deadline      *time.Time
	ClearDeadline bool
	IsActive      *bool
}

// UpdateFinanceGoalOutput represents the output of finance goal update.
type UpdateFinanceGoalOutput struct {
	FinanceGoal *entity.FinanceGoal
}

// UpdateFinanceGoalUseCase handles finance goal updates, propagating name and
// target changes to a mirrored goal through the sync orchestrator.
type UpdateFinanceGoalUseCase struct {
	financeGoalRepo adapter.FinanceGoalRepository
	sync            *sync.Orchestrator
	cache           adapter.CacheInvalidator
}

// NewUpdateFinanceGoalUseCase creates a new UpdateFinanceGoalUseCase instance.
func NewUpdateFinanceGoalUseCase(financeGoalRepo adapter.FinanceGoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *UpdateFinanceGoalUseCase {
	return &UpdateFinanceGoalUseCase{
		financeGoalRepo: financeGoalRepo,
		sync:            syncOrchestrator,
		cache:           cache,
	}
}

// Execute performs the finance goal update.
func (uc *UpdateFinanceGoalUseCase) Execute(ctx context.Context, input UpdateFinanceGoalInput) (*UpdateFinanceGoalOutput, error) {
	financeGoal, err := findOwnedFinanceGoal(ctx, uc.financeGoalRepo, input.UserID, input.FinanceGoalID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewFinanceGoalError(
				domainerror.ErrCodeMissingFinanceGoalFields,
				"name cannot be empty",
				nil,
			)
		}
		financeGoal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewFinanceGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		financeGoal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domainerror.NewFinanceGoalError(
				domainerror.ErrCodeInvalidCurrentAmount,
				"current amount cannot be negative",
				domainerror.ErrInvalidCurrentAmount,
			)
		}
		financeGoal.CurrentAmount = *input.CurrentAmount
	}
	switch {
	case input.ClearDeadline:
		financeGoal.Deadline = nil
	case input.Deadline != nil:
		financeGoal.Deadline = input.Deadline
	}
	if input.IsActive != nil {
		financeGoal.IsActive = *input.IsActive
	}
	financeGoal.UpdatedAt = time.Now().UTC()

	if err := uc.financeGoalRepo.Update(ctx, financeGoal); err != nil {
		return nil, fmt.Errorf("failed to update finance goal: %w", err)
	}

	uc.sync.Mirror(ctx, sync.MirrorCommand{
		Action:      sync.ActionUpdate,
		Origin:      sync.OriginFinanceGoal,
		FinanceGoal: financeGoal,
	})

	invalidateFinanceGoalCaches(ctx, uc.cache, input.UserID)

	return &UpdateFinanceGoalOutput{
		FinanceGoal: financeGoal,
	}, nil
}

// findOwnedFinanceGoal loads a finance goal and verifies ownership.
func findOwnedFinanceGoal(ctx context.Context, repo adapter.FinanceGoalRepository, userID, financeGoalID uuid.UUID) (*entity.FinanceGoal, error) {
	financeGoal, err := repo.FindByID(ctx, financeGoalID)
	if err != nil {
		return nil, domainerror.NewFinanceGoalError(
			domainerror.ErrCodeFinanceGoalNotFound,
			"finance goal not found",
			domainerror.ErrFinanceGoalNotFound,
		)
	}

	if financeGoal.UserID != userID {
		return nil, domainerror.NewFinanceGoalError(
			domainerror.ErrCodeUnauthorizedFinanceGoal,
			"finance goal does not belong to user",
			domainerror.ErrUnauthorizedFinanceGoalAccess,
		)
	}

	return financeGoal, nil
}
