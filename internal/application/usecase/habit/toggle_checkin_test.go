package habit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

type fakeHabitRepo struct {
	adapter.HabitRepository
	habits   map[uuid.UUID]*entity.Habit
	checkins map[uuid.UUID]*entity.HabitCheckin
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{
		habits:   make(map[uuid.UUID]*entity.Habit),
		checkins: make(map[uuid.UUID]*entity.HabitCheckin),
	}
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	copied := *habit
	r.habits[habit.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	habit, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (r *fakeHabitRepo) FindByUser(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, habit := range r.habits {
		if habit.UserID != userID {
			continue
		}
		if activeOnly && !habit.Active {
			continue
		}
		copied := *habit
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *entity.Habit) error {
	if _, ok := r.habits[habit.ID]; !ok {
		return domainerror.ErrHabitNotFound
	}
	copied := *habit
	r.habits[habit.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.habits, id)
	return nil
}

func (r *fakeHabitRepo) FindCheckin(_ context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCheckin, error) {
	for _, checkin := range r.checkins {
		if checkin.HabitID == habitID && checkin.Date.Equal(entity.DateOnly(date)) {
			copied := *checkin
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeHabitRepo) CreateCheckin(_ context.Context, checkin *entity.HabitCheckin) error {
	copied := *checkin
	r.checkins[checkin.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) UpdateCheckin(_ context.Context, checkin *entity.HabitCheckin) error {
	if _, ok := r.checkins[checkin.ID]; !ok {
		return errors.New("check-in not found")
	}
	copied := *checkin
	r.checkins[checkin.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) FindCheckinsByHabit(_ context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitCheckin, error) {
	var out []*entity.HabitCheckin
	for _, checkin := range r.checkins {
		if checkin.HabitID != habitID {
			continue
		}
		if checkin.Date.Before(entity.DateOnly(from)) || checkin.Date.After(entity.DateOnly(to)) {
			continue
		}
		copied := *checkin
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeHabitRepo) CountCheckins(_ context.Context, habitID uuid.UUID) (int64, error) {
	var count int64
	for _, checkin := range r.checkins {
		if checkin.HabitID == habitID {
			count++
		}
	}
	return count, nil
}

func seedHabit(t *testing.T, repo *fakeHabitRepo, userID uuid.UUID) *entity.Habit {
	t.Helper()
	habit := entity.NewHabit(userID, "Morning run", "health", entity.HabitFrequencyDaily, 7, "")
	if err := repo.Create(context.Background(), habit); err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	return habit
}

func TestToggleCheckinCreatesThenFlipsSameRow(t *testing.T) {
	repo := newFakeHabitRepo()
	toggle := NewToggleCheckinUseCase(repo, nil, nil)
	userID := uuid.New()
	habit := seedHabit(t, repo, userID)
	ctx := context.Background()

	first, err := toggle.Execute(ctx, ToggleCheckinInput{UserID: userID, HabitID: habit.ID})
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Checkin.Completed {
		t.Error("first toggle should mark the habit completed")
	}

	second, err := toggle.Execute(ctx, ToggleCheckinInput{UserID: userID, HabitID: habit.ID})
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Checkin.Completed {
		t.Error("second toggle should flip completion off")
	}
	if second.Checkin.ID != first.Checkin.ID {
		t.Error("toggling twice must reuse the same row, not insert a second one")
	}
	if len(repo.checkins) != 1 {
		t.Errorf("check-in rows = %d, want exactly 1 per habit and date", len(repo.checkins))
	}

	third, err := toggle.Execute(ctx, ToggleCheckinInput{UserID: userID, HabitID: habit.ID})
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if !third.Checkin.Completed || third.Checkin.ID != first.Checkin.ID {
		t.Error("third toggle should flip the original row back to completed")
	}
}

func TestToggleCheckinRejectsFutureDate(t *testing.T) {
	repo := newFakeHabitRepo()
	toggle := NewToggleCheckinUseCase(repo, nil, nil)
	userID := uuid.New()
	habit := seedHabit(t, repo, userID)

	future := time.Now().UTC().AddDate(0, 0, 2)
	_, err := toggle.Execute(context.Background(), ToggleCheckinInput{
		UserID:  userID,
		HabitID: habit.ID,
		Date:    &future,
	})

	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeCheckinInFuture {
		t.Errorf("unexpected error %v, want future-date rejection", err)
	}
}

func TestToggleCheckinRejectsArchivedHabit(t *testing.T) {
	repo := newFakeHabitRepo()
	toggle := NewToggleCheckinUseCase(repo, nil, nil)
	userID := uuid.New()
	habit := seedHabit(t, repo, userID)
	habit.Active = false
	if err := repo.Update(context.Background(), habit); err != nil {
		t.Fatalf("archive habit: %v", err)
	}

	_, err := toggle.Execute(context.Background(), ToggleCheckinInput{UserID: userID, HabitID: habit.ID})

	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitArchived {
		t.Errorf("unexpected error %v, want archived rejection", err)
	}
}

func TestToggleCheckinPreservesWhatsAppSource(t *testing.T) {
	repo := newFakeHabitRepo()
	toggle := NewToggleCheckinUseCase(repo, nil, nil)
	userID := uuid.New()
	habit := seedHabit(t, repo, userID)

	output, err := toggle.Execute(context.Background(), ToggleCheckinInput{
		UserID:  userID,
		HabitID: habit.ID,
		Source:  entity.SourceWhatsApp,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if output.Checkin.Source != entity.SourceWhatsApp {
		t.Errorf("source = %q, want whatsapp", output.Checkin.Source)
	}
}

func TestDeleteHabitArchivesWhenHistoryExists(t *testing.T) {
	repo := newFakeHabitRepo()
	toggle := NewToggleCheckinUseCase(repo, nil, nil)
	remove := NewDeleteHabitUseCase(repo, nil)
	userID := uuid.New()
	ctx := context.Background()

	withHistory := seedHabit(t, repo, userID)
	if _, err := toggle.Execute(ctx, ToggleCheckinInput{UserID: userID, HabitID: withHistory.ID}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	output, err := remove.Execute(ctx, DeleteHabitInput{UserID: userID, HabitID: withHistory.ID})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !output.Archived {
		t.Error("habit with history should be archived, not deleted")
	}
	archived, err := repo.FindByID(ctx, withHistory.ID)
	if err != nil {
		t.Fatalf("archived habit should still exist: %v", err)
	}
	if archived.Active {
		t.Error("archived habit should be inactive")
	}

	fresh := seedHabit(t, repo, userID)
	output, err = remove.Execute(ctx, DeleteHabitInput{UserID: userID, HabitID: fresh.ID})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if output.Archived {
		t.Error("habit without history should be hard-deleted")
	}
	if _, err := repo.FindByID(ctx, fresh.ID); err == nil {
		t.Error("hard-deleted habit should be gone")
	}
}
