package sync

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

type recordingMilestones struct {
	goalTypes []string
}

func (r *recordingMilestones) RecordMilestone(goalType string) {
	r.goalTypes = append(r.goalTypes, goalType)
}

func seedExpenseLimit(t *testing.T, financeGoals *fakeFinanceGoalRepo, userID uuid.UUID, target int64) *entity.FinanceGoal {
	t.Helper()
	goal := entity.NewFinanceGoal(userID, "Monthly budget", entity.FinanceGoalTypeExpenseLimit, decimal.NewFromInt(target), nil)
	if err := financeGoals.Create(context.Background(), goal); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}
	return goal
}

func TestRecomputeFiresMilestoneOnlyOnCrossing(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	seedExpenseLimit(t, financeGoals, userID, 5000)

	// 70% of the limit: below every threshold, no event.
	transactions.add(userID, entity.TransactionTypeExpense, 3500, now)
	events, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("at 70%% expected no events, got %d", len(events))
	}

	// 85%: crosses the 80% boundary, exactly one event.
	transactions.add(userID, entity.TransactionTypeExpense, 750, now)
	events, err = orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("at 85%% expected 1 event, got %d", len(events))
	}
	if events[0].Milestone != valueobject.Milestone80 {
		t.Errorf("milestone = %q, want %q", events[0].Milestone, valueobject.Milestone80)
	}
	if events[0].NewProgress != 85 {
		t.Errorf("new progress = %d, want 85", events[0].NewProgress)
	}

	// 90%: still inside the 80..100 band, already reported, no event.
	transactions.add(userID, entity.TransactionTypeExpense, 250, now)
	events, err = orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("at 90%% expected no events, got %d", len(events))
	}
}

func TestRecomputeJumpPastBothThresholdsFiresOnce(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	seedExpenseLimit(t, financeGoals, userID, 1000)

	// 0% straight to 110%: one event, and it is the 100% one.
	transactions.add(userID, entity.TransactionTypeExpense, 1100, now)
	events, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Milestone != valueobject.Milestone100 {
		t.Errorf("milestone = %q, want %q", events[0].Milestone, valueobject.Milestone100)
	}
	if events[0].NewProgress != 110 {
		t.Errorf("new progress = %d, want 110 (unclamped past the target)", events[0].NewProgress)
	}
}

func TestRecomputeExpenseLimitNotificationIsDestructive(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	seedExpenseLimit(t, financeGoals, userID, 5000)
	transactions.add(userID, entity.TransactionTypeExpense, 4200, now)

	events, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	notification := events[0].Notification()
	if notification.Variant != valueobject.VariantDestructive {
		t.Errorf("expense limit crossing must be destructive, got %q", notification.Variant)
	}
}

func TestRecomputeExpenseLimitUsesCurrentMonthOnly(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	goal := seedExpenseLimit(t, financeGoals, userID, 5000)

	// Last month's spending must not count against this month's envelope.
	transactions.add(userID, entity.TransactionTypeExpense, 9000, now.AddDate(0, -1, 0))
	transactions.add(userID, entity.TransactionTypeExpense, 1200, now)

	if _, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now); err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}

	updated, err := financeGoals.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("reload finance goal: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("current amount = %s, want 1200", updated.CurrentAmount)
	}
}

func TestRecomputeSavingsAccumulatesNetIncome(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	goal := entity.NewFinanceGoal(userID, "Emergency fund", entity.FinanceGoalTypeEmergencyFund, decimal.NewFromInt(10000), nil)
	goal.CreatedAt = now.AddDate(0, -2, 0)
	if err := financeGoals.Create(ctx, goal); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}

	transactions.add(userID, entity.TransactionTypeIncome, 3000, now.AddDate(0, -1, 0))
	transactions.add(userID, entity.TransactionTypeExpense, 1100, now.AddDate(0, -1, 2))
	// Before the goal existed: excluded.
	transactions.add(userID, entity.TransactionTypeIncome, 500, now.AddDate(0, -3, 0))

	if _, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now); err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}

	updated, err := financeGoals.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("reload finance goal: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(1900)) {
		t.Errorf("current amount = %s, want 1900 (3000 income minus 1100 expense)", updated.CurrentAmount)
	}
}

func TestRecomputeIsolatesPerGoalFailures(t *testing.T) {
	orchestrator, _, financeGoals, transactions := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	broken := seedExpenseLimit(t, financeGoals, userID, 5000)
	healthy := entity.NewFinanceGoal(userID, "Income target", entity.FinanceGoalTypeIncomeTarget, decimal.NewFromInt(4000), nil)
	if err := financeGoals.Create(ctx, healthy); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}
	financeGoals.failUpdateID = broken.ID

	transactions.add(userID, entity.TransactionTypeIncome, 4000, now)
	transactions.add(userID, entity.TransactionTypeExpense, 4500, now)

	events, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now)
	if err != nil {
		t.Fatalf("a single failing goal must not abort the scan: %v", err)
	}

	// Only the healthy goal reports: it jumped to 100% of its income target.
	if len(events) != 1 {
		t.Fatalf("expected 1 event from the healthy goal, got %d", len(events))
	}
	if events[0].GoalID != healthy.ID {
		t.Errorf("event came from %s, want the healthy goal %s", events[0].GoalID, healthy.ID)
	}

	updated, err := financeGoals.FindByID(ctx, healthy.ID)
	if err != nil {
		t.Fatalf("reload finance goal: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("healthy goal current amount = %s, want 4000", updated.CurrentAmount)
	}
}

func TestRecomputeRecordsMilestoneMetric(t *testing.T) {
	goals := newFakeGoalRepo()
	financeGoals := newFakeFinanceGoalRepo()
	transactions := &fakeTransactionRepo{}
	recorder := &recordingMilestones{}
	orchestrator := NewOrchestrator(goals, financeGoals, transactions, recorder)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	seedExpenseLimit(t, financeGoals, userID, 1000)
	transactions.add(userID, entity.TransactionTypeExpense, 850, now)

	if _, err := orchestrator.RecomputeFinanceGoals(ctx, userID, now); err != nil {
		t.Fatalf("RecomputeFinanceGoals() error: %v", err)
	}

	if len(recorder.goalTypes) != 1 || recorder.goalTypes[0] != string(entity.FinanceGoalTypeExpenseLimit) {
		t.Errorf("recorded milestones = %v, want one expense_limit entry", recorder.goalTypes)
	}
}
