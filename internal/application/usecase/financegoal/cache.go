package financegoal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
)

// invalidateFinanceGoalCaches marks the finance goal query groups stale after
// a mutation. Mirroring also touches the goals groups.
func invalidateFinanceGoalCaches(ctx context.Context, cache adapter.CacheInvalidator, userID uuid.UUID) {
	if cache == nil {
		return
	}

	groups := []adapter.CacheGroup{
		adapter.CacheGroupFinanceGoals,
		adapter.CacheGroupGoals,
		adapter.CacheGroupGoalsActiveSummary,
	}

	if err := cache.Invalidate(ctx, userID, groups...); err != nil {
		slog.Warn("Cache invalidation failed",
			"user_id", userID,
			"groups", groups,
			"error", err,
		)
	}
}
