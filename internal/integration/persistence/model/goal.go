// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type                string     `gorm:"type:varchar(20);not null"`
	Title               string     `gorm:"type:varchar(255);not null"`
	Description         string     `gorm:"type:text"`
	TargetValue         *float64   `gorm:"type:decimal(15,2)"`
	CurrentValue        float64    `gorm:"type:decimal(15,2);not null;default:0"`
	Unit                string     `gorm:"type:varchar(50)"`
	DueDate             *time.Time `gorm:"type:date"`
	Status              string     `gorm:"type:varchar(20);not null;default:'active';index"`
	LinkedHabitID       *uuid.UUID `gorm:"type:uuid;index"`
	LinkedFinanceGoalID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt           time.Time  `gorm:"not null"`
	UpdatedAt           time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                  m.ID,
		UserID:              m.UserID,
		Type:                entity.GoalType(m.Type),
		Title:               m.Title,
		Description:         m.Description,
		TargetValue:         m.TargetValue,
		CurrentValue:        m.CurrentValue,
		Unit:                m.Unit,
		DueDate:             m.DueDate,
		Status:              entity.GoalStatus(m.Status),
		LinkedHabitID:       m.LinkedHabitID,
		LinkedFinanceGoalID: m.LinkedFinanceGoalID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                  goal.ID,
		UserID:              goal.UserID,
		Type:                string(goal.Type),
		Title:               goal.Title,
		Description:         goal.Description,
		TargetValue:         goal.TargetValue,
		CurrentValue:        goal.CurrentValue,
		Unit:                goal.Unit,
		DueDate:             goal.DueDate,
		Status:              string(goal.Status),
		LinkedHabitID:       goal.LinkedHabitID,
		LinkedFinanceGoalID: goal.LinkedFinanceGoalID,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

// GoalProgressModel represents the goal_progress table in the database.
// Rows form an append-only ledger; the parent goal's current_value equals the
// sum of delta_value over its rows.
type GoalProgressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"type:date;not null"`
	DeltaValue float64   `gorm:"type:decimal(15,2);not null"`
	Note       string    `gorm:"type:text"`
	Source     string    `gorm:"type:varchar(20);not null;default:'app'"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalProgressModel.
func (GoalProgressModel) TableName() string {
	return "goal_progress"
}

// ToEntity converts a GoalProgressModel to a domain GoalProgress entity.
func (m *GoalProgressModel) ToEntity() *entity.GoalProgress {
	return &entity.GoalProgress{
		ID:         m.ID,
		GoalID:     m.GoalID,
		Date:       m.Date,
		DeltaValue: m.DeltaValue,
		Note:       m.Note,
		Source:     entity.Source(m.Source),
		CreatedAt:  m.CreatedAt,
	}
}

// GoalProgressFromEntity creates a GoalProgressModel from a domain GoalProgress entity.
func GoalProgressFromEntity(entry *entity.GoalProgress) *GoalProgressModel {
	return &GoalProgressModel{
		ID:         entry.ID,
		GoalID:     entry.GoalID,
		Date:       entry.Date,
		DeltaValue: entry.DeltaValue,
		Note:       entry.Note,
		Source:     string(entry.Source),
		CreatedAt:  entry.CreatedAt,
	}
}
