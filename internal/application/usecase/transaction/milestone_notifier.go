package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

// MilestoneNotifier turns milestone events from the recompute scan into queued
// notification jobs. Users who opted out of milestone alerts are skipped.
type MilestoneNotifier struct {
	userRepo  adapter.UserRepository
	queueRepo adapter.NotificationQueueRepository
}

// NewMilestoneNotifier creates a new MilestoneNotifier instance.
func NewMilestoneNotifier(userRepo adapter.UserRepository, queueRepo adapter.NotificationQueueRepository) *MilestoneNotifier {
	return &MilestoneNotifier{
		userRepo:  userRepo,
		queueRepo: queueRepo,
	}
}

// Enqueue queues one notification job per milestone event. Failures are
// logged and swallowed: notifications never block a ledger write.
func (n *MilestoneNotifier) Enqueue(ctx context.Context, userID uuid.UUID, events []valueobject.MilestoneEvent) {
	if n == nil || len(events) == 0 {
		return
	}

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Milestone notification skipped, user lookup failed",
			"user_id", userID,
			"error", err,
		)
		return
	}
	if !user.MilestoneAlerts {
		return
	}

	for _, event := range events {
		notification := event.Notification()
		job := entity.NewNotificationJob(
			user.ID,
			entity.TemplateMilestone,
			user.Email,
			user.Name,
			notification.Title,
			map[string]interface{}{
				"goal_name":   event.GoalName,
				"goal_type":   string(event.GoalType),
				"milestone":   string(event.Milestone),
				"progress":    event.NewProgress,
				"description": notification.Description,
				"variant":     string(notification.Variant),
			},
		)

		if err := n.queueRepo.Create(ctx, job); err != nil {
			slog.Warn("Failed to queue milestone notification",
				"user_id", userID,
				"goal_id", event.GoalID,
				"error", err,
			)
		}
	}
}

// afterLedgerWrite runs the finance-goal recompute scan, queues milestone
// notifications and invalidates the query groups a transaction write touches.
func afterLedgerWrite(
	ctx context.Context,
	syncOrchestrator *sync.Orchestrator,
	notifier *MilestoneNotifier,
	cache adapter.CacheInvalidator,
	userID uuid.UUID,
) []valueobject.MilestoneEvent {
	events, err := syncOrchestrator.RecomputeFinanceGoals(ctx, userID, time.Now().UTC())
	if err != nil {
		slog.Warn("Finance goal recompute failed after transaction write",
			"user_id", userID,
			"error", err,
		)
	}

	notifier.Enqueue(ctx, userID, events)

	if cache != nil {
		groups := []adapter.CacheGroup{
			adapter.CacheGroupTransactions,
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

	return events
}
