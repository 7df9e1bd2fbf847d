// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindByUser retrieves habits for a given user.
func (r *habitRepository) FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var habitModels []model.HabitModel
	result := query.Order("created_at ASC").Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// Update updates an existing habit in the database.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Save(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a habit and its check-ins from the database.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.HabitCheckinModel{}, "habit_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.HabitModel{}, "id = ?", id).Error
	})
}

// FindCheckin retrieves the check-in for a (habit, date) pair, or nil.
func (r *habitRepository) FindCheckin(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCheckin, error) {
	var checkinModel model.HabitCheckinModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, entity.DateOnly(date)).
		First(&checkinModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return checkinModel.ToEntity(), nil
}

// CreateCheckin inserts a new check-in row.
func (r *habitRepository) CreateCheckin(ctx context.Context, checkin *entity.HabitCheckin) error {
	checkinModel := model.HabitCheckinFromEntity(checkin)
	result := r.db.WithContext(ctx).Create(checkinModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateCheckin saves changes to an existing check-in row.
func (r *habitRepository) UpdateCheckin(ctx context.Context, checkin *entity.HabitCheckin) error {
	checkinModel := model.HabitCheckinFromEntity(checkin)
	result := r.db.WithContext(ctx).Save(checkinModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindCheckinsByHabit retrieves a habit's check-ins within a date range.
func (r *habitRepository) FindCheckinsByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitCheckin, error) {
	var checkinModels []model.HabitCheckinModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND date >= ? AND date <= ?", habitID, entity.DateOnly(from), entity.DateOnly(to)).
		Order("date DESC").
		Find(&checkinModels)
	if result.Error != nil {
		return nil, result.Error
	}

	checkins := make([]*entity.HabitCheckin, len(checkinModels))
	for i, cm := range checkinModels {
		checkins[i] = cm.ToEntity()
	}
	return checkins, nil
}

// CountCheckins counts check-in rows for a habit.
func (r *habitRepository) CountCheckins(ctx context.Context, habitID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HabitCheckinModel{}).
		Where("habit_id = ?", habitID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
