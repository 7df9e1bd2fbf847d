// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/persistence/model"
)

// financeGoalRepository implements the adapter.FinanceGoalRepository interface.
type financeGoalRepository struct {
	db *gorm.DB
}

// NewFinanceGoalRepository creates a new finance goal repository instance.
func NewFinanceGoalRepository(db *gorm.DB) adapter.FinanceGoalRepository {
	return &financeGoalRepository{
		db: db,
	}
}

// Create creates a new finance goal in the database.
func (r *financeGoalRepository) Create(ctx context.Context, goal *entity.FinanceGoal) error {
	goalModel := model.FinanceGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a finance goal by its ID.
func (r *financeGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinanceGoal, error) {
	var goalModel model.FinanceGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinanceGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all finance goals for a given user, newest first.
func (r *financeGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var goalModels []model.FinanceGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.FinanceGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindActiveByUser retrieves the user's active finance goals.
func (r *financeGoalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var goalModels []model.FinanceGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.FinanceGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindByLinkedGoal retrieves the finance goal mirroring a goal, or nil.
func (r *financeGoalRepository) FindByLinkedGoal(ctx context.Context, goalID uuid.UUID) (*entity.FinanceGoal, error) {
	var goalModel model.FinanceGoalModel
	result := r.db.WithContext(ctx).
		Where("linked_goal_id = ?", goalID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Update updates an existing finance goal in the database.
func (r *financeGoalRepository) Update(ctx context.Context, goal *entity.FinanceGoal) error {
	goalModel := model.FinanceGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a finance goal from the database.
func (r *financeGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FinanceGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
