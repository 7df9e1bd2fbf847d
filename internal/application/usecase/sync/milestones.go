package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/domain/progress"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

// RecomputeFinanceGoals re-derives CurrentAmount for all of the user's active
// finance goals from transaction history and returns the milestone events
// newly crossed by this update. Detection is edge-triggered: an event fires
// only when the pre-update progress was below the threshold and the
// post-update progress is at or above it. A failure on one goal is isolated
// and does not abort the scan of the others.
func (o *Orchestrator) RecomputeFinanceGoals(ctx context.Context, userID uuid.UUID, now time.Time) ([]valueobject.MilestoneEvent, error) {
	financeGoals, err := o.financeGoals.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var events []valueobject.MilestoneEvent
	for _, financeGoal := range financeGoals {
		event, err := o.recomputeOne(ctx, financeGoal, now)
		if err != nil {
			recomputeErr := domainerror.NewSyncError(
				domainerror.ErrCodeRecomputeFailed,
				"finance goal recompute failed",
				err,
			)
			slog.Warn("Skipping finance goal in recompute scan",
				"finance_goal_id", financeGoal.ID,
				"error", recomputeErr,
			)
			continue
		}
		if event != nil {
			events = append(events, *event)
			if o.recorder != nil {
				o.recorder.RecordMilestone(string(financeGoal.Type))
			}
		}
	}
	return events, nil
}

// recomputeOne updates a single finance goal's CurrentAmount and returns the
// milestone event crossed by the update, if any.
func (o *Orchestrator) recomputeOne(ctx context.Context, financeGoal *entity.FinanceGoal, now time.Time) (*valueobject.MilestoneEvent, error) {
	newAmount, err := o.currentPeriodAmount(ctx, financeGoal, now)
	if err != nil {
		return nil, err
	}

	before := progress.FinanceRaw(financeGoal.CurrentAmount, financeGoal.TargetAmount)
	after := progress.FinanceRaw(newAmount, financeGoal.TargetAmount)

	financeGoal.CurrentAmount = newAmount
	financeGoal.UpdatedAt = time.Now().UTC()
	if err := o.financeGoals.Update(ctx, financeGoal); err != nil {
		return nil, err
	}

	milestone, crossed := crossedMilestone(before, after)
	if !crossed {
		return nil, nil
	}

	return &valueobject.MilestoneEvent{
		GoalID:      financeGoal.ID,
		GoalName:    financeGoal.Name,
		GoalType:    financeGoal.Type,
		Milestone:   milestone,
		NewProgress: after,
	}, nil
}

// currentPeriodAmount derives a finance goal's current amount from transaction
// history. Expense limits and income targets are monthly envelopes; savings
// and emergency funds accumulate net income since the goal was created.
func (o *Orchestrator) currentPeriodAmount(ctx context.Context, financeGoal *entity.FinanceGoal, now time.Time) (decimal.Decimal, error) {
	switch financeGoal.Type {
	case entity.FinanceGoalTypeExpenseLimit:
		return o.transactions.SumAmountByType(ctx, financeGoal.UserID, entity.TransactionTypeExpense, startOfMonth(now), now)

	case entity.FinanceGoalTypeIncomeTarget:
		return o.transactions.SumAmountByType(ctx, financeGoal.UserID, entity.TransactionTypeIncome, startOfMonth(now), now)

	default: // savings, emergency_fund
		income, err := o.transactions.SumAmountByType(ctx, financeGoal.UserID, entity.TransactionTypeIncome, financeGoal.CreatedAt, now)
		if err != nil {
			return decimal.Zero, err
		}
		expense, err := o.transactions.SumAmountByType(ctx, financeGoal.UserID, entity.TransactionTypeExpense, financeGoal.CreatedAt, now)
		if err != nil {
			return decimal.Zero, err
		}
		return income.Sub(expense), nil
	}
}

// crossedMilestone reports the highest threshold newly crossed between two
// progress readings. One event per goal per scan: a jump from 70 straight past
// 100 fires only the 100% milestone.
func crossedMilestone(before, after int) (valueobject.Milestone, bool) {
	if before < 100 && after >= 100 {
		return valueobject.Milestone100, true
	}
	if before < 80 && after >= 80 {
		return valueobject.Milestone80, true
	}
	return "", false
}

// startOfMonth returns midnight UTC on the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
