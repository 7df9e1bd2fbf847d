// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit is expected to be completed.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
)

// Source identifies where a ledger write originated.
type Source string

const (
	SourceApp         Source = "app"
	SourceWhatsApp    Source = "whatsapp"
	SourceIntegration Source = "integration"
)

// DefaultHabitColor is the default color for habits.
const DefaultHabitColor = "#10B981"

// Habit represents a recurring habit tracked by a user.
type Habit struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Category     string
	Frequency    HabitFrequency
	WeeklyTarget int
	Active       bool
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewHabit creates a new Habit entity.
func NewHabit(userID uuid.UUID, name, category string, frequency HabitFrequency, weeklyTarget int, color string) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Category:     category,
		Frequency:    frequency,
		WeeklyTarget: weeklyTarget,
		Active:       true,
		Color:        color,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HabitCheckin represents a single daily completion record for a habit.
// At most one check-in exists per (habit, date); toggling reuses the row.
type HabitCheckin struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	Date      time.Time // Date-only, truncated to midnight UTC
	Completed bool
	Note      string
	Source    Source
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewHabitCheckin creates a new HabitCheckin entity for the given calendar date.
func NewHabitCheckin(habitID uuid.UUID, date time.Time, completed bool, note string, source Source) *HabitCheckin {
	now := time.Now().UTC()

	return &HabitCheckin{
		ID:        uuid.New(),
		HabitID:   habitID,
		Date:      DateOnly(date),
		Completed: completed,
		Note:      note,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HabitWithStats represents a habit with its derived check-in statistics.
type HabitWithStats struct {
	Habit          *Habit
	Streak         int
	WeeklyRate     int
	CompletedToday bool
}
