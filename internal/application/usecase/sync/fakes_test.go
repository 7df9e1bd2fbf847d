package sync

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// In-memory repositories backing the orchestrator tests.

type fakeGoalRepo struct {
	adapter.GoalRepository
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
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

func (r *fakeGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			out = append(out, &copied)
		}
	}
	return out, nil
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
	return nil
}

type fakeFinanceGoalRepo struct {
	adapter.FinanceGoalRepository
	goals        map[uuid.UUID]*entity.FinanceGoal
	failUpdateID uuid.UUID // Update fails for this ID when set
	failCreate   bool
}

func newFakeFinanceGoalRepo() *fakeFinanceGoalRepo {
	return &fakeFinanceGoalRepo{goals: make(map[uuid.UUID]*entity.FinanceGoal)}
}

func (r *fakeFinanceGoalRepo) Create(_ context.Context, goal *entity.FinanceGoal) error {
	if r.failCreate {
		return errors.New("create failed")
	}
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

func (r *fakeFinanceGoalRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var out []*entity.FinanceGoal
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.IsActive {
			copied := *goal
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeFinanceGoalRepo) Update(_ context.Context, goal *entity.FinanceGoal) error {
	if goal.ID == r.failUpdateID {
		return errors.New("update failed")
	}
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

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) add(userID uuid.UUID, transactionType entity.TransactionType, amount float64, date time.Time) {
	txn := entity.NewTransaction(userID, transactionType, "test", decimal.NewFromFloat(amount), nil, entity.PaymentMethodCash, date, entity.SourceApp)
	r.transactions = append(r.transactions, txn)
}

func (r *fakeTransactionRepo) SumAmountByType(_ context.Context, userID uuid.UUID, transactionType entity.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, txn := range r.transactions {
		if txn.UserID != userID || txn.Type != transactionType {
			continue
		}
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total, nil
}
