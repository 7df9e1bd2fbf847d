package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/goal"
	"github.com/lifehub/backend/internal/application/usecase/habit"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

type stubAssistant struct {
	command   *adapter.AssistantCommand
	available bool
	lastReq   *adapter.AssistantParseRequest
}

func (s *stubAssistant) Parse(_ context.Context, request *adapter.AssistantParseRequest) (*adapter.AssistantCommand, error) {
	s.lastReq = request
	return s.command, nil
}

func (s *stubAssistant) IsAvailable() bool {
	return s.available
}

type memGoalRepo struct {
	adapter.GoalRepository
	goals   map[uuid.UUID]*entity.Goal
	entries map[uuid.UUID]*entity.GoalProgress
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{
		goals:   make(map[uuid.UUID]*entity.Goal),
		entries: make(map[uuid.UUID]*entity.GoalProgress),
	}
}

func (r *memGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *memGoalRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.Status == entity.GoalStatusActive {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	copied := *g
	r.goals[g.ID] = &copied
	return nil
}

func (r *memGoalRepo) AddProgress(_ context.Context, entry *entity.GoalProgress) error {
	g, ok := r.goals[entry.GoalID]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	g.CurrentValue += entry.DeltaValue
	return nil
}

type memHabitRepo struct {
	adapter.HabitRepository
	habits   map[uuid.UUID]*entity.Habit
	checkins map[uuid.UUID]*entity.HabitCheckin
}

func newMemHabitRepo() *memHabitRepo {
	return &memHabitRepo{
		habits:   make(map[uuid.UUID]*entity.Habit),
		checkins: make(map[uuid.UUID]*entity.HabitCheckin),
	}
}

func (r *memHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *memHabitRepo) FindByUser(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.habits {
		if h.UserID != userID {
			continue
		}
		if activeOnly && !h.Active {
			continue
		}
		copied := *h
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memHabitRepo) FindCheckin(_ context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCheckin, error) {
	for _, c := range r.checkins {
		if c.HabitID == habitID && c.Date.Equal(entity.DateOnly(date)) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memHabitRepo) CreateCheckin(_ context.Context, c *entity.HabitCheckin) error {
	copied := *c
	r.checkins[c.ID] = &copied
	return nil
}

type stubFinanceGoals struct {
	adapter.FinanceGoalRepository
}

type stubTransactions struct {
	adapter.TransactionRepository
}

func newHandleMessage(parser *stubAssistant, goals *memGoalRepo, habits *memHabitRepo) *HandleMessageUseCase {
	orchestrator := sync.NewOrchestrator(goals, stubFinanceGoals{}, stubTransactions{}, nil)
	addProgress := goal.NewAddProgressUseCase(goals, orchestrator, nil)
	toggleCheckin := habit.NewToggleCheckinUseCase(habits, nil, nil)
	return NewHandleMessageUseCase(parser, goals, habits, addProgress, toggleCheckin)
}

func TestHandleMessageLogsProgressWithWhatsAppSource(t *testing.T) {
	goals := newMemGoalRepo()
	habits := newMemHabitRepo()
	userID := uuid.New()

	target := 20.0
	g := entity.NewGoal(userID, entity.GoalTypeReading, "Read 20 books", "", &target, "books", nil)
	goals.goals[g.ID] = g

	parser := &stubAssistant{
		available: true,
		command: &adapter.AssistantCommand{
			Intent:     adapter.IntentLogProgress,
			TargetID:   g.ID.String(),
			DeltaValue: 2,
			Note:       "finished two on the flight",
		},
	}

	output, err := newHandleMessage(parser, goals, habits).Execute(context.Background(), HandleMessageInput{
		UserID:  userID,
		Message: "just finished 2 books",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Intent != adapter.IntentLogProgress {
		t.Errorf("intent = %q, want log_progress", output.Intent)
	}
	if output.Reply == "" {
		t.Error("expected a non-empty reply")
	}
	if goals.goals[g.ID].CurrentValue != 2 {
		t.Errorf("current value = %v, want 2", goals.goals[g.ID].CurrentValue)
	}
	for _, entry := range goals.entries {
		if entry.Source != entity.SourceWhatsApp {
			t.Errorf("ledger source = %q, want whatsapp", entry.Source)
		}
	}

	// The parser must have been offered the goal as a match candidate.
	if parser.lastReq == nil || len(parser.lastReq.Goals) != 1 || parser.lastReq.Goals[0].Name != "Read 20 books" {
		t.Error("parse request did not carry the user's goals")
	}
}

func TestHandleMessageTogglesCheckin(t *testing.T) {
	goals := newMemGoalRepo()
	habits := newMemHabitRepo()
	userID := uuid.New()

	h := entity.NewHabit(userID, "Meditate", "health", entity.HabitFrequencyDaily, 7, "")
	habits.habits[h.ID] = h

	parser := &stubAssistant{
		available: true,
		command: &adapter.AssistantCommand{
			Intent:   adapter.IntentToggleCheckin,
			TargetID: h.ID.String(),
		},
	}

	output, err := newHandleMessage(parser, goals, habits).Execute(context.Background(), HandleMessageInput{
		UserID:  userID,
		Message: "meditated today",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if output.Intent != adapter.IntentToggleCheckin {
		t.Errorf("intent = %q, want toggle_checkin", output.Intent)
	}
	if len(habits.checkins) != 1 {
		t.Fatalf("check-ins = %d, want 1", len(habits.checkins))
	}
	for _, c := range habits.checkins {
		if !c.Completed || c.Source != entity.SourceWhatsApp {
			t.Errorf("check-in completed=%v source=%q, want completed via whatsapp", c.Completed, c.Source)
		}
	}
}

func TestHandleMessageRejectsUnknownIntent(t *testing.T) {
	parser := &stubAssistant{
		available: true,
		command:   &adapter.AssistantCommand{Intent: adapter.IntentUnknown},
	}

	_, err := newHandleMessage(parser, newMemGoalRepo(), newMemHabitRepo()).Execute(context.Background(), HandleMessageInput{
		UserID:  uuid.New(),
		Message: "what's the weather",
	})

	var astErr *domainerror.AssistantError
	if !errors.As(err, &astErr) || astErr.Code != domainerror.ErrCodeUnknownIntent {
		t.Errorf("unexpected error %v, want unknown-intent", err)
	}
}

func TestHandleMessageRequiresConfiguredAssistant(t *testing.T) {
	parser := &stubAssistant{available: false}

	_, err := newHandleMessage(parser, newMemGoalRepo(), newMemHabitRepo()).Execute(context.Background(), HandleMessageInput{
		UserID:  uuid.New(),
		Message: "hello",
	})

	var astErr *domainerror.AssistantError
	if !errors.As(err, &astErr) || astErr.Code != domainerror.ErrCodeAssistantNotConfigured {
		t.Errorf("unexpected error %v, want not-configured", err)
	}
}
