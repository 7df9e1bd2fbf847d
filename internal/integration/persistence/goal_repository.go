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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all goals for a given user, newest first.
func (r *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindActiveByUser retrieves the user's active goals.
func (r *goalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.GoalStatusActive).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindByLinkedFinanceGoal retrieves the goal mirroring a finance goal, or nil.
func (r *goalRepository) FindByLinkedFinanceGoal(ctx context.Context, financeGoalID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("linked_finance_goal_id = ?", financeGoalID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal and its progress ledger from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.GoalProgressModel{}, "goal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GoalModel{}, "id = ?", id).Error
	})
}

// AddProgress inserts a ledger entry and increments the parent goal's
// current_value in a single database transaction.
func (r *goalRepository) AddProgress(ctx context.Context, entry *entity.GoalProgress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GoalProgressFromEntity(entry)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", entry.GoalID).
			Updates(map[string]interface{}{
				"current_value": gorm.Expr("current_value + ?", entry.DeltaValue),
				"updated_at":    entry.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}
		return nil
	})
}

// RemoveProgress deletes a ledger entry and decrements the parent goal's
// current_value in a single database transaction.
func (r *goalRepository) RemoveProgress(ctx context.Context, entry *entity.GoalProgress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.GoalProgressModel{}, "id = ?", entry.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrProgressNotFound
		}

		return tx.Model(&model.GoalModel{}).
			Where("id = ?", entry.GoalID).
			Update("current_value", gorm.Expr("current_value - ?", entry.DeltaValue)).
			Error
	})
}

// FindProgressByID retrieves a single progress ledger entry.
func (r *goalRepository) FindProgressByID(ctx context.Context, id uuid.UUID) (*entity.GoalProgress, error) {
	var progressModel model.GoalProgressModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&progressModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProgressNotFound
		}
		return nil, result.Error
	}
	return progressModel.ToEntity(), nil
}

// FindProgressByGoal retrieves a goal's ledger entries, newest first.
func (r *goalRepository) FindProgressByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalProgress, error) {
	var progressModels []model.GoalProgressModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC, created_at DESC").
		Find(&progressModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.GoalProgress, len(progressModels))
	for i, pm := range progressModels {
		entries[i] = pm.ToEntity()
	}
	return entries, nil
}
