package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

// ReconcileResult summarizes a mirror-pair reconciliation pass.
type ReconcileResult struct {
	PairsChecked   int
	MirrorsCreated int
	LinksRepaired  int
	FieldsSynced   int
}

// Reconcile re-scans a user's Goal ↔ FinanceGoal pairs and repairs broken
// mirrors: financial goals without a finance mirror, dangling cross-references,
// and drifted name/target fields. Mirror writes are best-effort so a failed
// create or a retried request can leave pairs inconsistent; this pass is the
// eventual-consistency backstop. The goal side wins on field drift.
func (o *Orchestrator) Reconcile(ctx context.Context, userID uuid.UUID) (*ReconcileResult, error) {
	result := &ReconcileResult{}

	goals, err := o.goals.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		if !goal.IsFinancial() || goal.Status != entity.GoalStatusActive {
			continue
		}
		result.PairsChecked++
		o.reconcileGoal(ctx, goal, result)
	}

	financeGoals, err := o.financeGoals.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, financeGoal := range financeGoals {
		if financeGoal.LinkedGoalID != nil {
			continue
		}
		// Finance goals created before mirroring existed, or whose mirror
		// create failed, get their unified-view goal here.
		result.PairsChecked++
		o.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginFinanceGoal, FinanceGoal: financeGoal})
		if financeGoal.LinkedGoalID != nil {
			result.MirrorsCreated++
		}
	}

	return result, nil
}

// reconcileGoal repairs one goal's mirror pairing in place.
func (o *Orchestrator) reconcileGoal(ctx context.Context, goal *entity.Goal, result *ReconcileResult) {
	if goal.LinkedFinanceGoalID == nil {
		o.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})
		if goal.LinkedFinanceGoalID != nil {
			result.MirrorsCreated++
		}
		return
	}

	financeGoal, err := o.financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		// Dangling reference: drop the link and recreate the mirror.
		slog.Warn("Reconcile found dangling finance goal reference",
			"goal_id", goal.ID,
			"finance_goal_id", *goal.LinkedFinanceGoalID,
			"error", err,
		)
		goal.LinkedFinanceGoalID = nil
		goal.UpdatedAt = time.Now().UTC()
		if err := o.goals.Update(ctx, goal); err != nil {
			slog.Warn("Reconcile failed to clear dangling reference", "goal_id", goal.ID, "error", err)
			return
		}
		o.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})
		if goal.LinkedFinanceGoalID != nil {
			result.LinksRepaired++
		}
		return
	}

	repaired := false
	if financeGoal.LinkedGoalID == nil || *financeGoal.LinkedGoalID != goal.ID {
		financeGoal.LinkedGoalID = &goal.ID
		repaired = true
	}

	synced := false
	if financeGoal.Name != goal.Title {
		financeGoal.Name = goal.Title
		synced = true
	}
	if goal.TargetValue != nil {
		target := decimal.NewFromFloat(*goal.TargetValue)
		if !financeGoal.TargetAmount.Equal(target) {
			financeGoal.TargetAmount = target
			synced = true
		}
	}

	if !repaired && !synced {
		return
	}

	financeGoal.UpdatedAt = time.Now().UTC()
	if err := o.financeGoals.Update(ctx, financeGoal); err != nil {
		slog.Warn("Reconcile failed to update finance goal", "finance_goal_id", financeGoal.ID, "error", err)
		return
	}
	if repaired {
		result.LinksRepaired++
	}
	if synced {
		result.FieldsSynced++
	}
}
