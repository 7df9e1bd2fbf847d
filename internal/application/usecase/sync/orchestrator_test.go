package sync

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

func newTestOrchestrator() (*Orchestrator, *fakeGoalRepo, *fakeFinanceGoalRepo, *fakeTransactionRepo) {
	goals := newFakeGoalRepo()
	financeGoals := newFakeFinanceGoalRepo()
	transactions := &fakeTransactionRepo{}
	return NewOrchestrator(goals, financeGoals, transactions, nil), goals, financeGoals, transactions
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestMirrorCreateFinanceGoalFromGoal(t *testing.T) {
	orchestrator, goals, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()

	goal := entity.NewGoal(userID, entity.GoalTypeSavings, "Trip to Japan", "", floatPtr(5000), "$", nil)
	if err := goals.Create(ctx, goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	if goal.LinkedFinanceGoalID == nil {
		t.Fatal("expected goal to be linked to its finance mirror")
	}

	mirror, err := financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		t.Fatalf("finance mirror not created: %v", err)
	}
	if mirror.Name != "Trip to Japan" {
		t.Errorf("mirror name = %q, want %q", mirror.Name, "Trip to Japan")
	}
	if mirror.Type != entity.FinanceGoalTypeSavings {
		t.Errorf("mirror type = %q, want savings", mirror.Type)
	}
	if !mirror.TargetAmount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("mirror target = %s, want 5000", mirror.TargetAmount)
	}
	if mirror.LinkedGoalID == nil || *mirror.LinkedGoalID != goal.ID {
		t.Error("mirror is not back-linked to the originating goal")
	}

	stored, err := goals.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("reload goal: %v", err)
	}
	if stored.LinkedFinanceGoalID == nil || *stored.LinkedFinanceGoalID != mirror.ID {
		t.Error("persisted goal does not carry the mirror link")
	}
}

func TestMirrorSkipsNonFinancialGoal(t *testing.T) {
	orchestrator, _, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()

	goal := entity.NewGoal(uuid.New(), entity.GoalTypeReading, "Read 20 books", "", floatPtr(20), "books", nil)

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	if goal.LinkedFinanceGoalID != nil {
		t.Error("non-financial goal must not be mirrored")
	}
	if len(financeGoals.goals) != 0 {
		t.Errorf("expected no finance goals, found %d", len(financeGoals.goals))
	}
}

func TestMirrorAlreadyLinkedGoalIsNotMirroredAgain(t *testing.T) {
	orchestrator, _, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()

	existingID := uuid.New()
	goal := entity.NewGoal(uuid.New(), entity.GoalTypeFinancial, "Emergency fund", "", floatPtr(10000), "$", nil)
	goal.LinkedFinanceGoalID = &existingID

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	if len(financeGoals.goals) != 0 {
		t.Error("a goal that already carries a link must not spawn a second mirror")
	}
}

func TestMirrorCreateGoalFromFinanceGoal(t *testing.T) {
	orchestrator, goals, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()

	financeGoal := entity.NewFinanceGoal(userID, "New car", entity.FinanceGoalTypeSavings, decimal.NewFromInt(30000), nil)
	if err := financeGoals.Create(ctx, financeGoal); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginFinanceGoal, FinanceGoal: financeGoal})

	if financeGoal.LinkedGoalID == nil {
		t.Fatal("expected finance goal to be linked to its goal mirror")
	}

	mirror, err := goals.FindByID(ctx, *financeGoal.LinkedGoalID)
	if err != nil {
		t.Fatalf("goal mirror not created: %v", err)
	}
	if mirror.Type != entity.GoalTypeFinancial {
		t.Errorf("mirror type = %q, want financial", mirror.Type)
	}
	if mirror.TargetValue == nil || *mirror.TargetValue != 30000 {
		t.Error("mirror target was not copied from the finance goal")
	}
	if mirror.LinkedFinanceGoalID == nil || *mirror.LinkedFinanceGoalID != financeGoal.ID {
		t.Error("goal mirror is not back-linked to the finance goal")
	}

	// The cross-link guard must stop a second pass from duplicating.
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginFinanceGoal, FinanceGoal: financeGoal})
	if len(goals.goals) != 1 {
		t.Errorf("expected exactly one mirrored goal, found %d", len(goals.goals))
	}
}

func TestMirrorUpdatePropagatesGoalChanges(t *testing.T) {
	orchestrator, _, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()

	goal := entity.NewGoal(userID, entity.GoalTypeFinancial, "House deposit", "", floatPtr(50000), "$", nil)
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	goal.Title = "Apartment deposit"
	goal.TargetValue = floatPtr(40000)
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionUpdate, Origin: OriginGoal, Goal: goal})

	mirror, err := financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		t.Fatalf("reload mirror: %v", err)
	}
	if mirror.Name != "Apartment deposit" {
		t.Errorf("mirror name = %q, want updated title", mirror.Name)
	}
	if !mirror.TargetAmount.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("mirror target = %s, want 40000", mirror.TargetAmount)
	}
}

func TestMirrorRemoveDeletesFinanceMirror(t *testing.T) {
	orchestrator, _, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()

	goal := entity.NewGoal(uuid.New(), entity.GoalTypeFinancial, "Boat", "", floatPtr(15000), "$", nil)
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})
	mirrorID := *goal.LinkedFinanceGoalID

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionRemove, Origin: OriginGoal, Goal: goal})

	if _, err := financeGoals.FindByID(ctx, mirrorID); err == nil {
		t.Error("finance mirror should have been deleted")
	}
}

func TestMirrorRemoveArchivesGoalMirror(t *testing.T) {
	orchestrator, goals, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()

	financeGoal := entity.NewFinanceGoal(uuid.New(), "Vacation", entity.FinanceGoalTypeSavings, decimal.NewFromInt(3000), nil)
	if err := financeGoals.Create(ctx, financeGoal); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginFinanceGoal, FinanceGoal: financeGoal})
	mirrorID := *financeGoal.LinkedGoalID

	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionRemove, Origin: OriginFinanceGoal, FinanceGoal: financeGoal})

	mirror, err := goals.FindByID(ctx, mirrorID)
	if err != nil {
		t.Fatalf("goal mirror should survive as archived: %v", err)
	}
	if mirror.Status != entity.GoalStatusArchived {
		t.Errorf("mirror status = %q, want archived", mirror.Status)
	}
	if mirror.LinkedFinanceGoalID != nil {
		t.Error("archived mirror should have its finance link severed")
	}
}

func TestMirrorFailureIsSwallowed(t *testing.T) {
	orchestrator, goals, financeGoals, _ := newTestOrchestrator()
	financeGoals.failCreate = true
	ctx := context.Background()

	goal := entity.NewGoal(uuid.New(), entity.GoalTypeFinancial, "Retirement", "", floatPtr(100000), "$", nil)
	if err := goals.Create(ctx, goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	// Must not panic and must not surface the repository failure.
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	if goal.LinkedFinanceGoalID != nil {
		t.Error("failed mirror create must not leave a dangling link")
	}
}

func TestSyncGoalProgressPushesCurrentValue(t *testing.T) {
	orchestrator, _, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()

	goal := entity.NewGoal(uuid.New(), entity.GoalTypeSavings, "Laptop", "", floatPtr(2000), "$", nil)
	orchestrator.Mirror(ctx, MirrorCommand{Action: ActionCreate, Origin: OriginGoal, Goal: goal})

	goal.CurrentValue = 750
	orchestrator.SyncGoalProgress(ctx, goal)

	mirror, err := financeGoals.FindByID(ctx, *goal.LinkedFinanceGoalID)
	if err != nil {
		t.Fatalf("reload mirror: %v", err)
	}
	if !mirror.CurrentAmount.Equal(decimal.NewFromInt(750)) {
		t.Errorf("mirror current amount = %s, want 750", mirror.CurrentAmount)
	}
}

func TestReconcileCreatesMissingMirrors(t *testing.T) {
	orchestrator, goals, financeGoals, _ := newTestOrchestrator()
	ctx := context.Background()
	userID := uuid.New()

	// A financial goal that never got its mirror.
	orphan := entity.NewGoal(userID, entity.GoalTypeFinancial, "Solar panels", "", floatPtr(8000), "$", nil)
	if err := goals.Create(ctx, orphan); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	result, err := orchestrator.Reconcile(ctx, userID)
	if err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}
	if result.MirrorsCreated != 1 {
		t.Errorf("MirrorsCreated = %d, want 1", result.MirrorsCreated)
	}

	repaired, err := goals.FindByID(ctx, orphan.ID)
	if err != nil {
		t.Fatalf("reload goal: %v", err)
	}
	if repaired.LinkedFinanceGoalID == nil {
		t.Fatal("reconcile should have created and linked a finance mirror")
	}
	if _, err := financeGoals.FindByID(ctx, *repaired.LinkedFinanceGoalID); err != nil {
		t.Errorf("linked finance mirror does not exist: %v", err)
	}
}
