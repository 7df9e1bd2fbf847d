package habit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
)

// invalidateHabitCaches marks the habit query groups stale after a mutation.
func invalidateHabitCaches(ctx context.Context, cache adapter.CacheInvalidator, userID uuid.UUID) {
	if cache == nil {
		return
	}

	groups := []adapter.CacheGroup{
		adapter.CacheGroupHabits,
		adapter.CacheGroupHabitsTodaySummary,
	}

	if err := cache.Invalidate(ctx, userID, groups...); err != nil {
		slog.Warn("Cache invalidation failed",
			"user_id", userID,
			"groups", groups,
			"error", err,
		)
	}
}
