package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

type goalTestEnv struct {
	goals        *fakeGoalRepo
	financeGoals *fakeFinanceGoalRepo
	cache        *fakeCache
	add          *AddProgressUseCase
	remove       *DeleteProgressUseCase
}

func newGoalTestEnv() *goalTestEnv {
	goals := newFakeGoalRepo()
	financeGoals := newFakeFinanceGoalRepo()
	cache := newFakeCache()
	orchestrator := newTestSyncOrchestrator(goals, financeGoals)
	return &goalTestEnv{
		goals:        goals,
		financeGoals: financeGoals,
		cache:        cache,
		add:          NewAddProgressUseCase(goals, orchestrator, cache),
		remove:       NewDeleteProgressUseCase(goals, orchestrator, cache),
	}
}

func (env *goalTestEnv) seedGoal(t *testing.T, userID uuid.UUID, target float64) *entity.Goal {
	t.Helper()
	goal := entity.NewGoal(userID, entity.GoalTypeReading, "Read books", "", &target, "books", nil)
	if err := env.goals.Create(context.Background(), goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	return goal
}

func TestAddProgressRejectsNonPositiveDelta(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	goal := env.seedGoal(t, userID, 20)

	for _, delta := range []float64{0, -5} {
		_, err := env.add.Execute(context.Background(), AddProgressInput{
			UserID:     userID,
			GoalID:     goal.ID,
			DeltaValue: delta,
		})
		if err == nil {
			t.Fatalf("delta %v: expected validation error", delta)
		}
		var goalErr *domainerror.GoalError
		if !asGoalError(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidProgressDelta {
			t.Errorf("delta %v: unexpected error %v", delta, err)
		}
	}
}

func TestAddProgressIncrementsCurrentValue(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	goal := env.seedGoal(t, userID, 20)

	output, err := env.add.Execute(context.Background(), AddProgressInput{
		UserID:     userID,
		GoalID:     goal.ID,
		DeltaValue: 3,
		Note:       "finished three chapters",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Goal.CurrentValue != 3 {
		t.Errorf("current value = %v, want 3", output.Goal.CurrentValue)
	}
	if output.Entry.Source != entity.SourceApp {
		t.Errorf("source = %q, want default app source", output.Entry.Source)
	}
	if output.Goal.Status != entity.GoalStatusActive {
		t.Errorf("status = %q, want active below target", output.Goal.Status)
	}

	if env.cache.invalidated[adapter.CacheGroupGoals] == 0 {
		t.Error("goals cache group was not invalidated")
	}
	if env.cache.invalidated[adapter.CacheGroupGoalsActiveSummary] == 0 {
		t.Error("goals-active-summary cache group was not invalidated")
	}
}

func TestAddProgressAutoCompletesAtTarget(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	goal := env.seedGoal(t, userID, 10)

	if _, err := env.add.Execute(context.Background(), AddProgressInput{
		UserID: userID, GoalID: goal.ID, DeltaValue: 6,
	}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	output, err := env.add.Execute(context.Background(), AddProgressInput{
		UserID: userID, GoalID: goal.ID, DeltaValue: 4,
	})
	if err != nil {
		t.Fatalf("second append: %v", err)
	}

	if output.Goal.Status != entity.GoalStatusDone {
		t.Errorf("status = %q, want done at 100%%", output.Goal.Status)
	}
}

func TestAddProgressRejectsInactiveGoal(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	goal := env.seedGoal(t, userID, 10)
	goal.Status = entity.GoalStatusArchived
	if err := env.goals.Update(context.Background(), goal); err != nil {
		t.Fatalf("archive goal: %v", err)
	}

	_, err := env.add.Execute(context.Background(), AddProgressInput{
		UserID: userID, GoalID: goal.ID, DeltaValue: 1,
	})
	var goalErr *domainerror.GoalError
	if !asGoalError(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotActive {
		t.Errorf("unexpected error %v, want goal-not-active", err)
	}
}

func TestAddProgressRejectsForeignGoal(t *testing.T) {
	env := newGoalTestEnv()
	owner := uuid.New()
	goal := env.seedGoal(t, owner, 10)

	_, err := env.add.Execute(context.Background(), AddProgressInput{
		UserID: uuid.New(), GoalID: goal.ID, DeltaValue: 1,
	})
	var goalErr *domainerror.GoalError
	if !asGoalError(err, &goalErr) || goalErr.Code != domainerror.ErrCodeUnauthorizedGoalAccess {
		t.Errorf("unexpected error %v, want unauthorized", err)
	}
}

func TestAddProgressPushesValueToFinanceMirror(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	ctx := context.Background()

	target := 5000.0
	goal := entity.NewGoal(userID, entity.GoalTypeSavings, "Trip fund", "", &target, "$", nil)
	mirror := entity.NewFinanceGoal(userID, "Trip fund", entity.FinanceGoalTypeSavings, decimal.NewFromInt(5000), nil)
	mirror.LinkedGoalID = &goal.ID
	goal.LinkedFinanceGoalID = &mirror.ID
	if err := env.goals.Create(ctx, goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	if err := env.financeGoals.Create(ctx, mirror); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	if _, err := env.add.Execute(ctx, AddProgressInput{
		UserID: userID, GoalID: goal.ID, DeltaValue: 1200,
	}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	updated, err := env.financeGoals.FindByID(ctx, mirror.ID)
	if err != nil {
		t.Fatalf("reload mirror: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("mirror current amount = %s, want 1200", updated.CurrentAmount)
	}
}

func TestDeleteProgressDecrementsAndReactivates(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	ctx := context.Background()
	goal := env.seedGoal(t, userID, 10)

	first, err := env.add.Execute(ctx, AddProgressInput{UserID: userID, GoalID: goal.ID, DeltaValue: 10})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.Goal.Status != entity.GoalStatusDone {
		t.Fatalf("status = %q, want done before removal", first.Goal.Status)
	}

	output, err := env.remove.Execute(ctx, DeleteProgressInput{
		UserID:     userID,
		GoalID:     goal.ID,
		ProgressID: first.Entry.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Goal.CurrentValue != 0 {
		t.Errorf("current value = %v, want 0 after removal", output.Goal.CurrentValue)
	}
	if output.Goal.Status != entity.GoalStatusActive {
		t.Errorf("status = %q, want reactivated", output.Goal.Status)
	}
}

func TestDeleteProgressRejectsEntryFromAnotherGoal(t *testing.T) {
	env := newGoalTestEnv()
	userID := uuid.New()
	ctx := context.Background()
	first := env.seedGoal(t, userID, 10)
	second := env.seedGoal(t, userID, 10)

	appended, err := env.add.Execute(ctx, AddProgressInput{UserID: userID, GoalID: first.ID, DeltaValue: 2})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	_, err = env.remove.Execute(ctx, DeleteProgressInput{
		UserID:     userID,
		GoalID:     second.ID,
		ProgressID: appended.Entry.ID,
	})
	var goalErr *domainerror.GoalError
	if !asGoalError(err, &goalErr) || goalErr.Code != domainerror.ErrCodeProgressNotFound {
		t.Errorf("unexpected error %v, want progress-not-found", err)
	}
}
