package financegoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/progress"
)

// FinanceGoalBand classifies how close a finance goal is to its target.
type FinanceGoalBand string

const (
	BandOnTrack  FinanceGoalBand = "on_track"
	BandWarning  FinanceGoalBand = "warning"
	BandExceeded FinanceGoalBand = "exceeded"
)

// FinanceGoalWithProgress pairs a finance goal with its derived progress.
type FinanceGoalWithProgress struct {
	FinanceGoal *entity.FinanceGoal
	Progress    int // Unclamped, may exceed 100
	Remaining   decimal.Decimal
	Band        FinanceGoalBand
}

// ListFinanceGoalsInput represents the input for listing finance goals.
type ListFinanceGoalsInput struct {
	UserID     uuid.UUID
	OnlyActive bool
}

// ListFinanceGoalsOutput represents the output of listing finance goals.
type ListFinanceGoalsOutput struct {
	FinanceGoals []FinanceGoalWithProgress
}

// ListFinanceGoalsUseCase lists a user's finance goals with derived progress.
type ListFinanceGoalsUseCase struct {
	financeGoalRepo adapter.FinanceGoalRepository
}

// NewListFinanceGoalsUseCase creates a new ListFinanceGoalsUseCase instance.
func NewListFinanceGoalsUseCase(financeGoalRepo adapter.FinanceGoalRepository) *ListFinanceGoalsUseCase {
	return &ListFinanceGoalsUseCase{
		financeGoalRepo: financeGoalRepo,
	}
}

// Execute performs the finance goal listing.
func (uc *ListFinanceGoalsUseCase) Execute(ctx context.Context, input ListFinanceGoalsInput) (*ListFinanceGoalsOutput, error) {
	var (
		goals []*entity.FinanceGoal
		err   error
	)
	if input.OnlyActive {
		goals, err = uc.financeGoalRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		goals, err = uc.financeGoalRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list finance goals: %w", err)
	}

	result := make([]FinanceGoalWithProgress, 0, len(goals))
	for _, g := range goals {
		pct := progress.FinanceRaw(g.CurrentAmount, g.TargetAmount)
		result = append(result, FinanceGoalWithProgress{
			FinanceGoal: g,
			Progress:    pct,
			Remaining:   g.TargetAmount.Sub(g.CurrentAmount),
			Band:        band(pct),
		})
	}

	return &ListFinanceGoalsOutput{
		FinanceGoals: result,
	}, nil
}

// band buckets a progress percentage. For expense limits the warning and
// exceeded bands read as danger; for accumulating goals they read as success.
func band(pct int) FinanceGoalBand {
	switch {
	case pct >= 100:
		return BandExceeded
	case pct >= 80:
		return BandWarning
	default:
		return BandOnTrack
	}
}
