// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceGoalType represents the kind of monetary objective being tracked.
type FinanceGoalType string

const (
	FinanceGoalTypeSavings       FinanceGoalType = "savings"
	FinanceGoalTypeExpenseLimit  FinanceGoalType = "expense_limit"
	FinanceGoalTypeIncomeTarget  FinanceGoalType = "income_target"
	FinanceGoalTypeEmergencyFund FinanceGoalType = "emergency_fund"
)

// FinanceGoal represents a monetary objective tracked against transaction
// history. CurrentAmount is advanced by the sync orchestrator's transaction
// scan, not by direct user edits (manual corrections go through update).
type FinanceGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          FinanceGoalType
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	IsActive      bool
	LinkedGoalID  *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewFinanceGoal creates a new active FinanceGoal entity.
func NewFinanceGoal(userID uuid.UUID, name string, goalType FinanceGoalType, targetAmount decimal.Decimal, deadline *time.Time) *FinanceGoal {
	now := time.Now().UTC()

	return &FinanceGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Type:          goalType,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsInverse reports whether progress semantics are inverted for this goal:
// for expense limits, reaching the target is a failure, not a success.
func (f *FinanceGoal) IsInverse() bool {
	return f.Type == FinanceGoalTypeExpenseLimit
}
