// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalType represents the kind of objective a goal tracks.
type GoalType string

const (
	GoalTypeCustom    GoalType = "custom"
	GoalTypeFinancial GoalType = "financial"
	GoalTypeSavings   GoalType = "savings"
	GoalTypeHabit     GoalType = "habit"
	GoalTypeTask      GoalType = "task"
	GoalTypeReading   GoalType = "reading"
	GoalTypeWeight    GoalType = "weight"
	GoalTypeExercise  GoalType = "exercise"
	GoalTypeStudy     GoalType = "study"
	GoalTypeHealth    GoalType = "health"
)

// GoalStatus represents the lifecycle status of a goal.
type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusDone     GoalStatus = "done"
	GoalStatusArchived GoalStatus = "archived"
)

// Goal represents a general-purpose tracked objective with a numeric target.
// CurrentValue advances only through GoalProgress ledger entries, except when
// the sync orchestrator mirrors a linked finance goal.
type Goal struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Type                GoalType
	Title               string
	Description         string
	TargetValue         *float64
	CurrentValue        float64
	Unit                string
	DueDate             *time.Time
	Status              GoalStatus
	LinkedHabitID       *uuid.UUID
	LinkedFinanceGoalID *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewGoal creates a new active Goal entity.
func NewGoal(userID uuid.UUID, goalType GoalType, title, description string, targetValue *float64, unit string, dueDate *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        goalType,
		Title:       title,
		Description: description,
		TargetValue: targetValue,
		Unit:        unit,
		DueDate:     dueDate,
		Status:      GoalStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsFinancial reports whether the goal type participates in finance-goal mirroring.
func (g *Goal) IsFinancial() bool {
	return g.Type == GoalTypeFinancial || g.Type == GoalTypeSavings
}

// GoalProgress represents one entry in a goal's append-only progress ledger.
// The parent goal's CurrentValue equals the sum of all entry deltas.
type GoalProgress struct {
	ID         uuid.UUID
	GoalID     uuid.UUID
	Date       time.Time
	DeltaValue float64
	Note       string
	Source     Source
	CreatedAt  time.Time
}

// NewGoalProgress creates a new progress ledger entry.
func NewGoalProgress(goalID uuid.UUID, date time.Time, deltaValue float64, note string, source Source) *GoalProgress {
	return &GoalProgress{
		ID:         uuid.New(),
		GoalID:     goalID,
		Date:       DateOnly(date),
		DeltaValue: deltaValue,
		Note:       note,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}
}
