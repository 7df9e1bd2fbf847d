// Package summary contains the aggregated dashboard read models.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/goal"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/progress"
)

// GoalsSummaryInput represents the input for the active-goals summary.
type GoalsSummaryInput struct {
	UserID uuid.UUID
}

// GoalsSummaryOutput represents the active-goals summary read model.
type GoalsSummaryOutput struct {
	Active          []goal.GoalWithProgress
	TotalActive     int
	CompletedCount  int
	OverdueCount    int
	AverageProgress int
	CacheVersion    int64
}

// GoalsSummaryUseCase builds the active-goals dashboard card. The cache
// version lets HTTP clients key their cached copy to the invalidation group.
type GoalsSummaryUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.CacheInvalidator
}

// NewGoalsSummaryUseCase creates a new GoalsSummaryUseCase instance.
func NewGoalsSummaryUseCase(goalRepo adapter.GoalRepository, cache adapter.CacheInvalidator) *GoalsSummaryUseCase {
	return &GoalsSummaryUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute builds the summary.
func (uc *GoalsSummaryUseCase) Execute(ctx context.Context, input GoalsSummaryInput) (*GoalsSummaryOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	today := time.Now().UTC()
	output := &GoalsSummaryOutput{}
	progressSum := 0

	for _, g := range goals {
		switch g.Status {
		case entity.GoalStatusDone:
			output.CompletedCount++
			continue
		case entity.GoalStatusArchived:
			continue
		}

		pct := progress.Calculate(g.CurrentValue, g.TargetValue)
		overdue := progress.IsGoalOverdue(g, today)
		output.Active = append(output.Active, goal.GoalWithProgress{
			Goal:      g,
			Progress:  pct,
			IsOverdue: overdue,
		})
		output.TotalActive++
		progressSum += pct
		if overdue {
			output.OverdueCount++
		}
	}

	if output.TotalActive > 0 {
		output.AverageProgress = progressSum / output.TotalActive
	}

	if uc.cache != nil {
		version, err := uc.cache.Version(ctx, input.UserID, adapter.CacheGroupGoalsActiveSummary)
		if err == nil {
			output.CacheVersion = version
		}
	}

	return output, nil
}
