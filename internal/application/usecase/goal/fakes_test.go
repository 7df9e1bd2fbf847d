package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// In-memory repositories backing the goal use case tests.

type fakeGoalRepo struct {
	adapter.GoalRepository
	goals   map[uuid.UUID]*entity.Goal
	entries map[uuid.UUID]*entity.GoalProgress
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{
		goals:   make(map[uuid.UUID]*entity.Goal),
		entries: make(map[uuid.UUID]*entity.GoalProgress),
	}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	for entryID, entry := range r.entries {
		if entry.GoalID == id {
			delete(r.entries, entryID)
		}
	}
	return nil
}

func (r *fakeGoalRepo) AddProgress(_ context.Context, entry *entity.GoalProgress) error {
	goal, ok := r.goals[entry.GoalID]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	goal.CurrentValue += entry.DeltaValue
	return nil
}

func (r *fakeGoalRepo) RemoveProgress(_ context.Context, entry *entity.GoalProgress) error {
	goal, ok := r.goals[entry.GoalID]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.entries, entry.ID)
	goal.CurrentValue -= entry.DeltaValue
	return nil
}

func (r *fakeGoalRepo) FindProgressByID(_ context.Context, id uuid.UUID) (*entity.GoalProgress, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrProgressNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeGoalRepo) FindProgressByGoal(_ context.Context, goalID uuid.UUID) ([]*entity.GoalProgress, error) {
	var out []*entity.GoalProgress
	for _, entry := range r.entries {
		if entry.GoalID == goalID {
			copied := *entry
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeFinanceGoalRepo struct {
	adapter.FinanceGoalRepository
	goals map[uuid.UUID]*entity.FinanceGoal
}

func newFakeFinanceGoalRepo() *fakeFinanceGoalRepo {
	return &fakeFinanceGoalRepo{goals: make(map[uuid.UUID]*entity.FinanceGoal)}
}

func (r *fakeFinanceGoalRepo) Create(_ context.Context, goal *entity.FinanceGoal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeFinanceGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinanceGoal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrFinanceGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeFinanceGoalRepo) Update(_ context.Context, goal *entity.FinanceGoal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrFinanceGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeFinanceGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeCache struct {
	invalidated map[adapter.CacheGroup]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{invalidated: make(map[adapter.CacheGroup]int)}
}

func (c *fakeCache) Invalidate(_ context.Context, _ uuid.UUID, groups ...adapter.CacheGroup) error {
	for _, group := range groups {
		c.invalidated[group]++
	}
	return nil
}

func (c *fakeCache) Version(_ context.Context, _ uuid.UUID, _ adapter.CacheGroup) (int64, error) {
	return 0, nil
}

type stubTransactionRepo struct {
	adapter.TransactionRepository
}

func newTestSyncOrchestrator(goals adapter.GoalRepository, financeGoals adapter.FinanceGoalRepository) *sync.Orchestrator {
	return sync.NewOrchestrator(goals, financeGoals, stubTransactionRepo{}, nil)
}

func asGoalError(err error, target **domainerror.GoalError) bool {
	return errors.As(err, target)
}
