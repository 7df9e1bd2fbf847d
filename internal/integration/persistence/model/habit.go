// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	Frequency    string    `gorm:"type:varchar(10);not null;default:'daily'"`
	WeeklyTarget int       `gorm:"not null;default:7"`
	Active       bool      `gorm:"not null;default:true;index"`
	Color        string    `gorm:"type:varchar(7)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	return &entity.Habit{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Category:     m.Category,
		Frequency:    entity.HabitFrequency(m.Frequency),
		WeeklyTarget: m.WeeklyTarget,
		Active:       m.Active,
		Color:        m.Color,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:           habit.ID,
		UserID:       habit.UserID,
		Name:         habit.Name,
		Category:     habit.Category,
		Frequency:    string(habit.Frequency),
		WeeklyTarget: habit.WeeklyTarget,
		Active:       habit.Active,
		Color:        habit.Color,
		CreatedAt:    habit.CreatedAt,
		UpdatedAt:    habit.UpdatedAt,
	}
}

// HabitCheckinModel represents the habit_checkins table in the database.
// A unique index on (habit_id, date) enforces one row per habit per day.
type HabitCheckinModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_checkins_habit_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_checkins_habit_date"`
	Completed bool      `gorm:"not null;default:false"`
	Note      string    `gorm:"type:text"`
	Source    string    `gorm:"type:varchar(20);not null;default:'app'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitCheckinModel.
func (HabitCheckinModel) TableName() string {
	return "habit_checkins"
}

// ToEntity converts a HabitCheckinModel to a domain HabitCheckin entity.
func (m *HabitCheckinModel) ToEntity() *entity.HabitCheckin {
	return &entity.HabitCheckin{
		ID:        m.ID,
		HabitID:   m.HabitID,
		Date:      m.Date,
		Completed: m.Completed,
		Note:      m.Note,
		Source:    entity.Source(m.Source),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// HabitCheckinFromEntity creates a HabitCheckinModel from a domain HabitCheckin entity.
func HabitCheckinFromEntity(checkin *entity.HabitCheckin) *HabitCheckinModel {
	return &HabitCheckinModel{
		ID:        checkin.ID,
		HabitID:   checkin.HabitID,
		Date:      checkin.Date,
		Completed: checkin.Completed,
		Note:      checkin.Note,
		Source:    string(checkin.Source),
		CreatedAt: checkin.CreatedAt,
		UpdatedAt: checkin.UpdatedAt,
	}
}
