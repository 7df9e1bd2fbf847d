package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
)

// invalidateGoalCaches marks the goal query groups stale after a mutation.
// Finance-mirrored goals also touch the finance-goal group.
func invalidateGoalCaches(ctx context.Context, cache adapter.CacheInvalidator, userID uuid.UUID, financial bool) {
	if cache == nil {
		return
	}

	groups := []adapter.CacheGroup{
		adapter.CacheGroupGoals,
		adapter.CacheGroupGoalsActiveSummary,
	}
	if financial {
		groups = append(groups, adapter.CacheGroupFinanceGoals)
	}

	if err := cache.Invalidate(ctx, userID, groups...); err != nil {
		slog.Warn("Cache invalidation failed",
			"user_id", userID,
			"groups", groups,
			"error", err,
		)
	}
}
