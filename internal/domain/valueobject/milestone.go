// Package valueobject defines immutable value types shared across use cases.
package valueobject

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// Milestone identifies a progress threshold a finance goal has newly crossed.
type Milestone string

const (
	Milestone80  Milestone = "80%"
	Milestone100 Milestone = "100%"
)

// NotificationVariant maps to the presentation style of a surfaced event.
type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// MilestoneEvent is emitted by the sync orchestrator when a finance goal's
// recomputed progress crosses a threshold. Detection is edge-triggered: the
// event fires only on the update that crosses the boundary.
type MilestoneEvent struct {
	GoalID      uuid.UUID
	GoalName    string
	GoalType    entity.FinanceGoalType
	Milestone   Milestone
	NewProgress int
}

// Notification is the presentation contract consumed by the notification surface.
type Notification struct {
	Title       string
	Description string
	Variant     NotificationVariant
}

// Notification renders the event into its user-facing presentation. Expense
// limits invert success semantics: crossing a threshold is a warning, never a
// celebration.
func (e MilestoneEvent) Notification() Notification {
	if e.GoalType == entity.FinanceGoalTypeExpenseLimit {
		if e.Milestone == Milestone100 {
			return Notification{
				Title:       "Spending limit exceeded",
				Description: fmt.Sprintf("%q is at %d%% of its limit", e.GoalName, e.NewProgress),
				Variant:     VariantDestructive,
			}
		}
		return Notification{
			Title:       "Approaching spending limit",
			Description: fmt.Sprintf("%q has used %d%% of its limit", e.GoalName, e.NewProgress),
			Variant:     VariantDestructive,
		}
	}

	if e.Milestone == Milestone100 {
		return Notification{
			Title:       "Goal reached!",
			Description: fmt.Sprintf("%q hit 100%% of its target", e.GoalName),
			Variant:     VariantDefault,
		}
	}
	return Notification{
		Title:       "Almost there!",
		Description: fmt.Sprintf("%q is at %d%% of its target", e.GoalName, e.NewProgress),
		Variant:     VariantDefault,
	}
}
