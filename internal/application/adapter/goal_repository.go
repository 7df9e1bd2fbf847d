// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal and progress-ledger persistence.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUser retrieves the user's active goals.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByLinkedFinanceGoal retrieves the goal mirroring a finance goal, or nil.
	FindByLinkedFinanceGoal(ctx context.Context, financeGoalID uuid.UUID) (*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and its progress ledger from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddProgress inserts a ledger entry and increments the parent goal's
	// CurrentValue by the entry's delta in a single database transaction.
	AddProgress(ctx context.Context, entry *entity.GoalProgress) error

	// RemoveProgress deletes a ledger entry and decrements the parent goal's
	// CurrentValue by the entry's delta in a single database transaction.
	RemoveProgress(ctx context.Context, entry *entity.GoalProgress) error

	// FindProgressByID retrieves a single progress ledger entry.
	FindProgressByID(ctx context.Context, id uuid.UUID) (*entity.GoalProgress, error)

	// FindProgressByGoal retrieves a goal's ledger entries, newest first.
	FindProgressByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalProgress, error)
}
