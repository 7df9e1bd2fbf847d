package financegoal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

type stubFinanceGoalRepo struct {
	goals []*entity.FinanceGoal
}

func (r *stubFinanceGoalRepo) Create(_ context.Context, goal *entity.FinanceGoal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *stubFinanceGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinanceGoal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubFinanceGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var result []*entity.FinanceGoal
	for _, g := range r.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (r *stubFinanceGoalRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var result []*entity.FinanceGoal
	for _, g := range r.goals {
		if g.UserID == userID && g.IsActive {
			result = append(result, g)
		}
	}
	return result, nil
}

func (r *stubFinanceGoalRepo) FindByLinkedGoal(_ context.Context, goalID uuid.UUID) (*entity.FinanceGoal, error) {
	for _, g := range r.goals {
		if g.LinkedGoalID != nil && *g.LinkedGoalID == goalID {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubFinanceGoalRepo) Update(_ context.Context, goal *entity.FinanceGoal) error {
	for i, g := range r.goals {
		if g.ID == goal.ID {
			r.goals[i] = goal
		}
	}
	return nil
}

func (r *stubFinanceGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedGoal(repo *stubFinanceGoalRepo, userID uuid.UUID, current, target int64) *entity.FinanceGoal {
	goal := entity.NewFinanceGoal(userID, "goal", entity.FinanceGoalTypeSavings, decimal.NewFromInt(target), nil)
	goal.CurrentAmount = decimal.NewFromInt(current)
	repo.goals = append(repo.goals, goal)
	return goal
}

func TestListDerivesProgressAndBands(t *testing.T) {
	userID := uuid.New()
	repo := &stubFinanceGoalRepo{}

	cases := []struct {
		name     string
		current  int64
		target   int64
		progress int
		band     FinanceGoalBand
	}{
		{"below warning", 790, 1000, 79, BandOnTrack},
		{"at warning threshold", 800, 1000, 80, BandWarning},
		{"above target", 1050, 1000, 105, BandExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo.goals = nil
			seedGoal(repo, userID, tc.current, tc.target)

			uc := NewListFinanceGoalsUseCase(repo)
			output, err := uc.Execute(context.Background(), ListFinanceGoalsInput{UserID: userID})
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if len(output.FinanceGoals) != 1 {
				t.Fatalf("expected 1 finance goal, got %d", len(output.FinanceGoals))
			}

			got := output.FinanceGoals[0]
			if got.Progress != tc.progress {
				t.Errorf("expected progress %d, got %d", tc.progress, got.Progress)
			}
			if got.Band != tc.band {
				t.Errorf("expected band %q, got %q", tc.band, got.Band)
			}
			want := decimal.NewFromInt(tc.target - tc.current)
			if !got.Remaining.Equal(want) {
				t.Errorf("expected remaining %s, got %s", want, got.Remaining)
			}
		})
	}
}

func TestListOnlyActiveFiltersInactiveGoals(t *testing.T) {
	userID := uuid.New()
	repo := &stubFinanceGoalRepo{}
	seedGoal(repo, userID, 0, 1000)
	inactive := seedGoal(repo, userID, 0, 500)
	inactive.IsActive = false

	uc := NewListFinanceGoalsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListFinanceGoalsInput{UserID: userID, OnlyActive: true})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(output.FinanceGoals) != 1 {
		t.Fatalf("expected 1 active finance goal, got %d", len(output.FinanceGoals))
	}
}

func TestListZeroTargetProgressIsZero(t *testing.T) {
	userID := uuid.New()
	repo := &stubFinanceGoalRepo{}
	seedGoal(repo, userID, 100, 0)

	uc := NewListFinanceGoalsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListFinanceGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := output.FinanceGoals[0].Progress; got != 0 {
		t.Errorf("expected progress 0 for zero target, got %d", got)
	}
}
