package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifehub/backend/internal/application/adapter"
)

func newTestInvalidator(t *testing.T) adapter.CacheInvalidator {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisInvalidator(client)
}

func TestRedisInvalidator(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("fresh group reports version zero", func(t *testing.T) {
		invalidator := newTestInvalidator(t)

		version, err := invalidator.Version(ctx, userID, adapter.CacheGroupGoals)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if version != 0 {
			t.Errorf("expected version 0, got %d", version)
		}
	})

	t.Run("invalidate bumps every named group", func(t *testing.T) {
		invalidator := newTestInvalidator(t)

		err := invalidator.Invalidate(ctx, userID, adapter.CacheGroupGoals, adapter.CacheGroupGoalsActiveSummary)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, group := range []adapter.CacheGroup{adapter.CacheGroupGoals, adapter.CacheGroupGoalsActiveSummary} {
			version, err := invalidator.Version(ctx, userID, group)
			if err != nil {
				t.Fatalf("version read failed: %v", err)
			}
			if version != 1 {
				t.Errorf("expected version 1 for %s, got %d", group, version)
			}
		}

		if version, _ := invalidator.Version(ctx, userID, adapter.CacheGroupHabits); version != 0 {
			t.Errorf("expected untouched group to stay at 0, got %d", version)
		}
	})

	t.Run("versions are scoped per user", func(t *testing.T) {
		invalidator := newTestInvalidator(t)

		if err := invalidator.Invalidate(ctx, userID, adapter.CacheGroupTransactions); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		other := uuid.New()
		if version, _ := invalidator.Version(ctx, other, adapter.CacheGroupTransactions); version != 0 {
			t.Errorf("expected other user's version to stay at 0, got %d", version)
		}
	})
}
