package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// AddProgressInput represents the input for logging progress against a goal.
type AddProgressInput struct {
	UserID     uuid.UUID
	GoalID     uuid.UUID
	DeltaValue float64
	Date       *time.Time // Optional, defaults to today
	Note       string
	Source     entity.Source
}

// AddProgressOutput represents the output of logging progress.
type AddProgressOutput struct {
	Goal  *entity.Goal
	Entry *entity.GoalProgress
}

// AddProgressUseCase appends an entry to a goal's progress ledger. The entry
// insert and the goal's CurrentValue increment happen in one database
// transaction; reaching the target auto-completes the goal.
type AddProgressUseCase struct {
	goalRepo adapter.GoalRepository
	sync     *sync.Orchestrator
	cache    adapter.CacheInvalidator
}

// NewAddProgressUseCase creates a new AddProgressUseCase instance.
func NewAddProgressUseCase(goalRepo adapter.GoalRepository, syncOrchestrator *sync.Orchestrator, cache adapter.CacheInvalidator) *AddProgressUseCase {
	return &AddProgressUseCase{
		goalRepo: goalRepo,
		sync:     syncOrchestrator,
		cache:    cache,
	}
}

// Execute performs the progress append.
func (uc *AddProgressUseCase) Execute(ctx context.Context, input AddProgressInput) (*AddProgressOutput, error) {
	if input.DeltaValue <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidProgressDelta,
			"delta value must be greater than zero",
			domainerror.ErrInvalidProgressDelta,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if goal.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotActive,
			"progress can only be logged against an active goal",
			domainerror.ErrGoalNotActive,
		)
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	source := input.Source
	if source == "" {
		source = entity.SourceApp
	}

	entry := entity.NewGoalProgress(goal.ID, date, input.DeltaValue, input.Note, source)

	if err := uc.goalRepo.AddProgress(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add progress: %w", err)
	}

	// Reload to observe the atomically incremented CurrentValue.
	goal, err = uc.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload goal: %w", err)
	}

	if goal.TargetValue != nil && goal.CurrentValue >= *goal.TargetValue && goal.Status == entity.GoalStatusActive {
		goal.Status = entity.GoalStatusDone
		goal.UpdatedAt = time.Now().UTC()
		if err := uc.goalRepo.Update(ctx, goal); err != nil {
			return nil, fmt.Errorf("failed to complete goal: %w", err)
		}
	}

	uc.sync.SyncGoalProgress(ctx, goal)

	invalidateGoalCaches(ctx, uc.cache, input.UserID, goal.IsFinancial())

	return &AddProgressOutput{
		Goal:  goal,
		Entry: entry,
	}, nil
}
