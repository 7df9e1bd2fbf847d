// Package sync implements the cross-entity orchestrator that keeps Goal and
// FinanceGoal mirrors consistent and recomputes finance-goal progress when
// transactions are posted. Mirror writes are best-effort: the driving mutation
// is the durability boundary, mirror failures are logged and swallowed.
package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// Origin identifies which side of a mirrored pair initiated a mutation. The
// dispatcher uses it to avoid re-mirroring an event it originated itself.
type Origin string

const (
	OriginGoal        Origin = "goal"
	OriginFinanceGoal Origin = "finance_goal"
)

// MirrorAction identifies the mirror operation to perform.
type MirrorAction string

const (
	ActionCreate MirrorAction = "create"
	ActionUpdate MirrorAction = "update"
	ActionRemove MirrorAction = "remove"
)

// MirrorCommand is an explicit mirror request carrying its origin tag.
// Exactly one of Goal / FinanceGoal is set, matching the origin side.
type MirrorCommand struct {
	Action      MirrorAction
	Origin      Origin
	Goal        *entity.Goal
	FinanceGoal *entity.FinanceGoal
}

// MilestoneRecorder records emitted milestone events for observability.
type MilestoneRecorder interface {
	RecordMilestone(goalType string)
}

// Orchestrator coordinates Goal ↔ FinanceGoal mirroring and the
// transaction-driven finance-goal recompute scan.
type Orchestrator struct {
	goals        adapter.GoalRepository
	financeGoals adapter.FinanceGoalRepository
	transactions adapter.TransactionRepository
	recorder     MilestoneRecorder // Optional
}

// NewOrchestrator creates a new sync orchestrator instance.
func NewOrchestrator(
	goals adapter.GoalRepository,
	financeGoals adapter.FinanceGoalRepository,
	transactions adapter.TransactionRepository,
	recorder MilestoneRecorder,
) *Orchestrator {
	return &Orchestrator{
		goals:        goals,
		financeGoals: financeGoals,
		transactions: transactions,
		recorder:     recorder,
	}
}

// Mirror dispatches a mirror command. It never returns an error: failures are
// wrapped as SyncError, logged, and swallowed so the primary mutation is
// reported as successful.
func (o *Orchestrator) Mirror(ctx context.Context, cmd MirrorCommand) {
	var err error

	switch {
	case cmd.Origin == OriginGoal && cmd.Action == ActionCreate:
		err = o.createFinanceGoalMirror(ctx, cmd.Goal)
	case cmd.Origin == OriginGoal && cmd.Action == ActionUpdate:
		err = o.updateFinanceGoalMirror(ctx, cmd.Goal)
	case cmd.Origin == OriginGoal && cmd.Action == ActionRemove:
		err = o.removeFinanceGoalMirror(ctx, cmd.Goal)
	case cmd.Origin == OriginFinanceGoal && cmd.Action == ActionCreate:
		err = o.createGoalMirror(ctx, cmd.FinanceGoal)
	case cmd.Origin == OriginFinanceGoal && cmd.Action == ActionUpdate:
		err = o.updateGoalMirror(ctx, cmd.FinanceGoal)
	case cmd.Origin == OriginFinanceGoal && cmd.Action == ActionRemove:
		err = o.archiveGoalMirror(ctx, cmd.FinanceGoal)
	}

	if err != nil {
		syncErr := domainerror.NewSyncError(
			domainerror.ErrCodeMirrorWriteFailed,
			"mirror write failed",
			err,
		)
		slog.Warn("Mirror sync failed, primary operation unaffected",
			"action", cmd.Action,
			"origin", cmd.Origin,
			"error", syncErr,
		)
	}
}

// createFinanceGoalMirror creates the FinanceGoal mirror for a newly created
// financial/savings goal and stores the cross-reference both ways.
func (o *Orchestrator) createFinanceGoalMirror(ctx context.Context, goal *entity.Goal) error {
	if goal == nil || !goal.IsFinancial() {
		return nil
	}
	// A payload that already carries a link came from this orchestrator.
	if goal.LinkedFinanceGoalID != nil {
		return nil
	}

	target := decimal.Zero
	if goal.TargetValue != nil {
		target = decimal.NewFromFloat(*goal.TargetValue)
	}

	// Both financial and savings goals mirror as a savings objective; the
	// other finance goal types only originate on the finance side.
	financeGoal := entity.NewFinanceGoal(goal.UserID, goal.Title, entity.FinanceGoalTypeSavings, target, goal.DueDate)
	financeGoal.LinkedGoalID = &goal.ID

	if err := o.financeGoals.Create(ctx, financeGoal); err != nil {
		return err
	}

	goal.LinkedFinanceGoalID = &financeGoal.ID
	goal.UpdatedAt = time.Now().UTC()
	return o.goals.Update(ctx, goal)
}

// updateFinanceGoalMirror pushes name/target/deadline changes from a goal to
// its linked finance goal.
func (o *Orchestrator) updateFinanceGoalMirror(ctx context.Context, goal *entity.Goal) error {
	if goal == nil || goal.LinkedFinanceGoalID == nil {
		return nil
	}

	financeGoal, err := o.financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		return err
	}

	financeGoal.Name = goal.Title
	if goal.TargetValue != nil {
		financeGoal.TargetAmount = decimal.NewFromFloat(*goal.TargetValue)
	}
	financeGoal.Deadline = goal.DueDate
	financeGoal.UpdatedAt = time.Now().UTC()

	return o.financeGoals.Update(ctx, financeGoal)
}

// removeFinanceGoalMirror deletes the finance goal linked to a goal being
// archived or deleted. The mirror goes first; the caller proceeds with the
// primary regardless of the outcome here.
func (o *Orchestrator) removeFinanceGoalMirror(ctx context.Context, goal *entity.Goal) error {
	if goal == nil || goal.LinkedFinanceGoalID == nil {
		return nil
	}
	return o.financeGoals.Delete(ctx, *goal.LinkedFinanceGoalID)
}

// createGoalMirror creates the Goal mirror for a finance goal created through
// the finance module, so it appears in the unified goals view.
func (o *Orchestrator) createGoalMirror(ctx context.Context, financeGoal *entity.FinanceGoal) error {
	if financeGoal == nil {
		return nil
	}
	if financeGoal.LinkedGoalID != nil {
		return nil
	}

	target, _ := financeGoal.TargetAmount.Float64()
	goal := entity.NewGoal(financeGoal.UserID, entity.GoalTypeFinancial, financeGoal.Name, "", &target, "$", financeGoal.Deadline)
	goal.CurrentValue, _ = financeGoal.CurrentAmount.Float64()
	goal.LinkedFinanceGoalID = &financeGoal.ID

	if err := o.goals.Create(ctx, goal); err != nil {
		return err
	}

	financeGoal.LinkedGoalID = &goal.ID
	financeGoal.UpdatedAt = time.Now().UTC()
	return o.financeGoals.Update(ctx, financeGoal)
}

// updateGoalMirror pushes name/target changes from a finance goal to its
// mirrored goal.
func (o *Orchestrator) updateGoalMirror(ctx context.Context, financeGoal *entity.FinanceGoal) error {
	if financeGoal == nil || financeGoal.LinkedGoalID == nil {
		return nil
	}

	goal, err := o.goals.FindByID(ctx, *financeGoal.LinkedGoalID)
	if err != nil {
		return err
	}

	target, _ := financeGoal.TargetAmount.Float64()
	goal.Title = financeGoal.Name
	goal.TargetValue = &target
	goal.CurrentValue, _ = financeGoal.CurrentAmount.Float64()
	goal.DueDate = financeGoal.Deadline
	goal.UpdatedAt = time.Now().UTC()

	return o.goals.Update(ctx, goal)
}

// archiveGoalMirror archives the goal mirrored by a finance goal being deleted.
func (o *Orchestrator) archiveGoalMirror(ctx context.Context, financeGoal *entity.FinanceGoal) error {
	if financeGoal == nil || financeGoal.LinkedGoalID == nil {
		return nil
	}

	goal, err := o.goals.FindByID(ctx, *financeGoal.LinkedGoalID)
	if err != nil {
		return err
	}

	goal.Status = entity.GoalStatusArchived
	goal.LinkedFinanceGoalID = nil
	goal.UpdatedAt = time.Now().UTC()

	return o.goals.Update(ctx, goal)
}

// SyncGoalProgress pushes a goal's CurrentValue into its linked finance goal
// after a ledger write (add or delete). Best-effort, one-directional.
func (o *Orchestrator) SyncGoalProgress(ctx context.Context, goal *entity.Goal) {
	if goal == nil || goal.LinkedFinanceGoalID == nil {
		return
	}

	financeGoal, err := o.financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		slog.Warn("Progress mirror sync failed to load finance goal",
			"goal_id", goal.ID,
			"finance_goal_id", *goal.LinkedFinanceGoalID,
			"error", err,
		)
		return
	}

	financeGoal.CurrentAmount = decimal.NewFromFloat(goal.CurrentValue)
	financeGoal.UpdatedAt = time.Now().UTC()

	if err := o.financeGoals.Update(ctx, financeGoal); err != nil {
		slog.Warn("Progress mirror sync failed to update finance goal",
			"goal_id", goal.ID,
			"finance_goal_id", financeGoal.ID,
			"error", err,
		)
	}
}
