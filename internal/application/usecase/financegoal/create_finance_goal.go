// Package financegoal contains finance goal use cases.
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

// CreateFinanceGoalInput represents the input for finance goal creation.
type CreateFinanceGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Type         entity.FinanceGoalType
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// CreateFinanceGoalOutput represents the output of finance goal creation.
type CreateFinanceGoalOutput struct {
	FinanceGoal *entity.FinanceGoal
}

// CreateFinanceGoalUseCase handles finance goal creation. Savings-style goals
// get a mirrored goal in the unified goals view through the sync orchestrator.
type CreateFinanceGoalUseCase struct {
	financeGoalRepo adapter.FinanceGoalRepository
	sync            *sync.Orchestrator
	cache           adapter.CacheInvalidator
}

// NewCreateFinanceGoalUseCase creates a new CreateFinanceGoalUseCase instance.
func NewCreateFinanceGoalUseCase(financeGoalRepo adapter.FinanceGoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *CreateFinanceGoalUseCase {
	return &CreateFinanceGoalUseCase{
		financeGoalRepo: financeGoalRepo,
		sync:            syncOrchestrator,
		cache:           cache,
	}
}

// Execute performs the finance goal creation.
func (uc *CreateFinanceGoalUseCase) Execute(ctx context.Context, input CreateFinanceGoalInput) (*CreateFinanceGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewFinanceGoalError(
			domainerror.ErrCodeMissingFinanceGoalFields,
			"name is required",
			nil,
		)
	}
	if !isValidFinanceGoalType(input.Type) {
		return nil, domainerror.NewFinanceGoalError(
			domainerror.ErrCodeInvalidFinanceGoalType,
			"invalid finance goal type",
			domainerror.ErrInvalidFinanceGoalType,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewFinanceGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	financeGoal := entity.NewFinanceGoal(input.UserID, input.Name, input.Type, input.TargetAmount, input.Deadline)

	if err := uc.financeGoalRepo.Create(ctx, financeGoal); err != nil {
		return nil, fmt.Errorf("failed to create finance goal: %w", err)
	}

	uc.sync.Mirror(ctx, sync.MirrorCommand{
		Action:      sync.ActionCreate,
		Origin:      sync.OriginFinanceGoal,
		FinanceGoal: financeGoal,
	})

	invalidateFinanceGoalCaches(ctx, uc.cache, input.UserID)

	return &CreateFinanceGoalOutput{
		FinanceGoal: financeGoal,
	}, nil
}

// isValidFinanceGoalType validates the finance goal type.
func isValidFinanceGoalType(goalType entity.FinanceGoalType) bool {
	switch goalType {
	case entity.FinanceGoalTypeSavings, entity.FinanceGoalTypeExpenseLimit,
		entity.FinanceGoalTypeIncomeTarget, entity.FinanceGoalTypeEmergencyFund:
		return true
	}
	return false
}
