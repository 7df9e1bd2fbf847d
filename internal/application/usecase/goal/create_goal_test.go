package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

func TestCreateGoalMirrorsFinancialGoal(t *testing.T) {
	env := newGoalTestEnv()
	orchestrator := newTestSyncOrchestrator(env.goals, env.financeGoals)
	create := NewCreateGoalUseCase(env.goals, orchestrator, env.cache)
	target := 5000.0

	output, err := create.Execute(context.Background(), CreateGoalInput{
		UserID:      uuid.New(),
		Type:        entity.GoalTypeSavings,
		Title:       "Trip to Japan",
		TargetValue: &target,
		Unit:        "$",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Goal.LinkedFinanceGoalID == nil {
		t.Fatal("financial goal should have a finance mirror")
	}
	if _, err := env.financeGoals.FindByID(context.Background(), *output.Goal.LinkedFinanceGoalID); err != nil {
		t.Errorf("finance mirror not found: %v", err)
	}
}

func TestCreateGoalSkipsMirrorForNonFinancial(t *testing.T) {
	env := newGoalTestEnv()
	orchestrator := newTestSyncOrchestrator(env.goals, env.financeGoals)
	create := NewCreateGoalUseCase(env.goals, orchestrator, env.cache)
	target := 20.0

	output, err := create.Execute(context.Background(), CreateGoalInput{
		UserID:      uuid.New(),
		Type:        entity.GoalTypeReading,
		Title:       "Read 20 books",
		TargetValue: &target,
		Unit:        "books",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Goal.LinkedFinanceGoalID != nil {
		t.Error("non-financial goal must not be mirrored")
	}
	if len(env.financeGoals.goals) != 0 {
		t.Errorf("expected no finance goals, found %d", len(env.financeGoals.goals))
	}
}

func TestCreateGoalValidation(t *testing.T) {
	env := newGoalTestEnv()
	orchestrator := newTestSyncOrchestrator(env.goals, env.financeGoals)
	create := NewCreateGoalUseCase(env.goals, orchestrator, env.cache)
	negative := -10.0

	cases := []struct {
		name  string
		input CreateGoalInput
		code  domainerror.GoalErrorCode
	}{
		{
			name:  "unknown type",
			input: CreateGoalInput{UserID: uuid.New(), Type: "sleep", Title: "Sleep more"},
			code:  domainerror.ErrCodeInvalidGoalType,
		},
		{
			name:  "empty title",
			input: CreateGoalInput{UserID: uuid.New(), Type: entity.GoalTypeCustom},
			code:  domainerror.ErrCodeMissingGoalFields,
		},
		{
			name:  "negative target",
			input: CreateGoalInput{UserID: uuid.New(), Type: entity.GoalTypeCustom, Title: "x", TargetValue: &negative},
			code:  domainerror.ErrCodeInvalidTargetValue,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := create.Execute(context.Background(), tc.input)
			var goalErr *domainerror.GoalError
			if !asGoalError(err, &goalErr) || goalErr.Code != tc.code {
				t.Errorf("unexpected error %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestArchiveGoalSeversFinanceMirror(t *testing.T) {
	env := newGoalTestEnv()
	orchestrator := newTestSyncOrchestrator(env.goals, env.financeGoals)
	create := NewCreateGoalUseCase(env.goals, orchestrator, env.cache)
	archive := NewUpdateGoalStatusUseCase(env.goals, orchestrator, env.cache)
	userID := uuid.New()
	target := 5000.0

	created, err := create.Execute(context.Background(), CreateGoalInput{
		UserID:      userID,
		Type:        entity.GoalTypeFinancial,
		Title:       "House deposit",
		TargetValue: &target,
		Unit:        "$",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mirrorID := *created.Goal.LinkedFinanceGoalID

	output, err := archive.Execute(context.Background(), UpdateGoalStatusInput{
		UserID: userID,
		GoalID: created.Goal.ID,
		Status: entity.GoalStatusArchived,
	})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	if output.Goal.Status != entity.GoalStatusArchived {
		t.Errorf("status = %q, want archived", output.Goal.Status)
	}
	if output.Goal.LinkedFinanceGoalID != nil {
		t.Error("archived goal should have its finance link severed")
	}
	if _, err := env.financeGoals.FindByID(context.Background(), mirrorID); err == nil {
		t.Error("finance mirror should have been deleted on archive")
	}
}
