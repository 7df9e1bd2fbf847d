// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// FinanceGoalRepository defines the interface for finance goal persistence.
type FinanceGoalRepository interface {
	// Create creates a new finance goal in the database.
	Create(ctx context.Context, goal *entity.FinanceGoal) error

	// FindByID retrieves a finance goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinanceGoal, error)

	// FindByUser retrieves all finance goals for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error)

	// FindActiveByUser retrieves the user's active finance goals.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error)

	// FindByLinkedGoal retrieves the finance goal mirroring a goal, or nil.
	FindByLinkedGoal(ctx context.Context, goalID uuid.UUID) (*entity.FinanceGoal, error)

	// Update updates an existing finance goal in the database.
	Update(ctx context.Context, goal *entity.FinanceGoal) error

	// Delete removes a finance goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
