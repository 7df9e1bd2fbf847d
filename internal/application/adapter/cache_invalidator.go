// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CacheGroup names a logical read-query group whose cached results a mutation
// makes stale. The consuming cache layer refetches by group.
type CacheGroup string

const (
	CacheGroupTransactions       CacheGroup = "transactions"
	CacheGroupFinanceGoals       CacheGroup = "finance-goals"
	CacheGroupGoals              CacheGroup = "goals"
	CacheGroupGoalsActiveSummary CacheGroup = "goals-active-summary"
	CacheGroupHabits             CacheGroup = "habits"
	CacheGroupHabitsTodaySummary CacheGroup = "habits-today-summary"
)

// CacheInvalidator signals which query groups a mutation made stale, scoped to
// one user. Invalidation is best-effort: callers log failures and move on.
type CacheInvalidator interface {
	// Invalidate marks the given groups stale for the user.
	Invalidate(ctx context.Context, userID uuid.UUID, groups ...CacheGroup) error

	// Version returns the current version counter of a group for a user.
	// Read clients include it in their cache keys.
	Version(ctx context.Context, userID uuid.UUID, group CacheGroup) (int64, error)
}
