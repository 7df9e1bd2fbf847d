// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit and check-in persistence.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUser retrieves habits for a given user. When activeOnly is set,
	// archived habits are excluded.
	FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error)

	// Update updates an existing habit in the database.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete removes a habit and its check-ins from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindCheckin retrieves the check-in for a (habit, date) pair, or nil when
	// none exists. Date comparison is date-only.
	FindCheckin(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCheckin, error)

	// CreateCheckin inserts a new check-in row.
	CreateCheckin(ctx context.Context, checkin *entity.HabitCheckin) error

	// UpdateCheckin saves changes to an existing check-in row.
	UpdateCheckin(ctx context.Context, checkin *entity.HabitCheckin) error

	// FindCheckinsByHabit retrieves a habit's check-ins within a date range.
	FindCheckinsByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitCheckin, error)

	// CountCheckins counts check-in rows for a habit (used to decide between
	// soft-archive and hard delete).
	CountCheckins(ctx context.Context, habitID uuid.UUID) (int64, error)
}
