// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

// FinanceGoalModel represents the finance_goals table in the database.
type FinanceGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(20);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline      *time.Time      `gorm:"type:date"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	LinkedGoalID  *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FinanceGoalModel.
func (FinanceGoalModel) TableName() string {
	return "finance_goals"
}

// ToEntity converts a FinanceGoalModel to a domain FinanceGoal entity.
func (m *FinanceGoalModel) ToEntity() *entity.FinanceGoal {
	return &entity.FinanceGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.FinanceGoalType(m.Type),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		IsActive:      m.IsActive,
		LinkedGoalID:  m.LinkedGoalID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FinanceGoalFromEntity creates a FinanceGoalModel from a domain FinanceGoal entity.
func FinanceGoalFromEntity(goal *entity.FinanceGoal) *FinanceGoalModel {
	return &FinanceGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Type:          string(goal.Type),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline,
		IsActive:      goal.IsActive,
		LinkedGoalID:  goal.LinkedGoalID,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
