// Package assistant contains the WhatsApp assistant use cases. Inbound
// messages are parsed into structured commands and dispatched to the same
// ledger use cases the HTTP surface uses, tagged with the whatsapp source.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/goal"
	"github.com/lifehub/backend/internal/application/usecase/habit"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

// HandleMessageInput represents one inbound assistant message.
type HandleMessageInput struct {
	UserID  uuid.UUID
	Message string
}

// HandleMessageOutput represents the assistant's response.
type HandleMessageOutput struct {
	Intent adapter.AssistantIntent
	Reply  string
}

// HandleMessageUseCase parses an assistant message and executes the command
// it encodes.
type HandleMessageUseCase struct {
	assistant     adapter.AssistantService
	goalRepo      adapter.GoalRepository
	habitRepo     adapter.HabitRepository
	addProgress   *goal.AddProgressUseCase
	toggleCheckin *habit.ToggleCheckinUseCase
}

// NewHandleMessageUseCase creates a new HandleMessageUseCase instance.
func NewHandleMessageUseCase(
	assistant adapter.AssistantService,
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	addProgress *goal.AddProgressUseCase,
	toggleCheckin *habit.ToggleCheckinUseCase,
) *HandleMessageUseCase {
	return &HandleMessageUseCase{
		assistant:     assistant,
		goalRepo:      goalRepo,
		habitRepo:     habitRepo,
		addProgress:   addProgress,
		toggleCheckin: toggleCheckin,
	}
}

// Execute parses the message and dispatches the resulting command.
func (uc *HandleMessageUseCase) Execute(ctx context.Context, input HandleMessageInput) (*HandleMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyMessage,
			"message cannot be empty",
			domainerror.ErrEmptyMessage,
		)
	}
	if !uc.assistant.IsAvailable() {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantNotConfigured,
			"assistant is not configured",
			domainerror.ErrAssistantNotConfigured,
		)
	}

	request, err := uc.buildParseRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	command, err := uc.assistant.Parse(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	switch command.Intent {
	case adapter.IntentLogProgress:
		return uc.dispatchLogProgress(ctx, input.UserID, command)
	case adapter.IntentToggleCheckin:
		return uc.dispatchToggleCheckin(ctx, input.UserID, command)
	default:
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeUnknownIntent,
			"could not understand the message",
			domainerror.ErrUnknownIntent,
		)
	}
}

// buildParseRequest collects the user's goals and habits as match candidates.
func (uc *HandleMessageUseCase) buildParseRequest(ctx context.Context, input HandleMessageInput) (*adapter.AssistantParseRequest, error) {
	goals, err := uc.goalRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	request := &adapter.AssistantParseRequest{Message: input.Message}
	for _, g := range goals {
		request.Goals = append(request.Goals, adapter.AssistantTarget{
			ID:   g.ID.String(),
			Name: g.Title,
			Unit: g.Unit,
		})
	}
	for _, h := range habits {
		request.Habits = append(request.Habits, adapter.AssistantTarget{
			ID:   h.ID.String(),
			Name: h.Name,
		})
	}
	return request, nil
}

func (uc *HandleMessageUseCase) dispatchLogProgress(ctx context.Context, userID uuid.UUID, command *adapter.AssistantCommand) (*HandleMessageOutput, error) {
	goalID, err := uuid.Parse(command.TargetID)
	if err != nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAmbiguousTarget,
			"could not match the message to a goal",
			domainerror.ErrAmbiguousTarget,
		)
	}

	result, err := uc.addProgress.Execute(ctx, goal.AddProgressInput{
		UserID:     userID,
		GoalID:     goalID,
		DeltaValue: command.DeltaValue,
		Note:       command.Note,
		Source:     entity.SourceWhatsApp,
	})
	if err != nil {
		return nil, err
	}

	reply := command.Reply
	if reply == "" {
		reply = fmt.Sprintf("Logged %.4g towards %q.", command.DeltaValue, result.Goal.Title)
	}
	if result.Goal.Status == entity.GoalStatusDone {
		reply = fmt.Sprintf("%s Goal complete!", reply)
	}

	return &HandleMessageOutput{
		Intent: adapter.IntentLogProgress,
		Reply:  reply,
	}, nil
}

func (uc *HandleMessageUseCase) dispatchToggleCheckin(ctx context.Context, userID uuid.UUID, command *adapter.AssistantCommand) (*HandleMessageOutput, error) {
	habitID, err := uuid.Parse(command.TargetID)
	if err != nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAmbiguousTarget,
			"could not match the message to a habit",
			domainerror.ErrAmbiguousTarget,
		)
	}

	result, err := uc.toggleCheckin.Execute(ctx, habit.ToggleCheckinInput{
		UserID:  userID,
		HabitID: habitID,
		Note:    command.Note,
		Source:  entity.SourceWhatsApp,
	})
	if err != nil {
		return nil, err
	}

	reply := command.Reply
	if reply == "" {
		if result.Checkin.Completed {
			reply = "Checked in. Keep it up!"
		} else {
			reply = "Check-in undone."
		}
	}

	return &HandleMessageOutput{
		Intent: adapter.IntentToggleCheckin,
		Reply:  reply,
	}, nil
}
