package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

func floatPtr(f float64) *float64 { return &f }

func TestCalculate(t *testing.T) {
	t.Run("returns zero when target is nil", func(t *testing.T) {
		if got := Calculate(50, nil); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("returns zero when target is zero", func(t *testing.T) {
		if got := Calculate(50, floatPtr(0)); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("rounds to nearest integer", func(t *testing.T) {
		if got := Calculate(1, floatPtr(3)); got != 33 {
			t.Errorf("expected 33, got %d", got)
		}
		if got := Calculate(2, floatPtr(3)); got != 67 {
			t.Errorf("expected 67, got %d", got)
		}
	})

	t.Run("clamps at 100", func(t *testing.T) {
		if got := Calculate(150, floatPtr(100)); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		if got := Calculate(-10, floatPtr(100)); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("monotonic non-decreasing in current value", func(t *testing.T) {
		target := floatPtr(250)
		prev := 0
		for current := 0.0; current <= 400; current += 7.5 {
			got := Calculate(current, target)
			if got < prev {
				t.Fatalf("progress decreased from %d to %d at current=%f", prev, got, current)
			}
			if got < 0 || got > 100 {
				t.Fatalf("progress %d out of [0,100] at current=%f", got, current)
			}
			prev = got
		}
	})
}

func TestFinanceRaw(t *testing.T) {
	t.Run("computes exceeded percentages above 100", func(t *testing.T) {
		got := FinanceRaw(decimal.NewFromInt(5500), decimal.NewFromInt(5000))
		if got != 110 {
			t.Errorf("expected 110, got %d", got)
		}
	})

	t.Run("84 percent scenario", func(t *testing.T) {
		got := FinanceRaw(decimal.NewFromInt(4200), decimal.NewFromInt(5000))
		if got != 84 {
			t.Errorf("expected 84, got %d", got)
		}
	})

	t.Run("zero target yields zero", func(t *testing.T) {
		if got := FinanceRaw(decimal.NewFromInt(100), decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestIsGoalOverdue(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	newGoal := func(status entity.GoalStatus, due *time.Time) *entity.Goal {
		return &entity.Goal{ID: uuid.New(), Status: status, DueDate: due}
	}

	t.Run("false without due date", func(t *testing.T) {
		if IsGoalOverdue(newGoal(entity.GoalStatusActive, nil), today) {
			t.Error("goal without due date must not be overdue")
		}
	})

	t.Run("false when due today regardless of time of day", func(t *testing.T) {
		due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if IsGoalOverdue(newGoal(entity.GoalStatusActive, &due), today) {
			t.Error("goal due today must not be overdue")
		}
	})

	t.Run("true when due yesterday", func(t *testing.T) {
		due := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
		if !IsGoalOverdue(newGoal(entity.GoalStatusActive, &due), today) {
			t.Error("goal due yesterday must be overdue")
		}
	})

	t.Run("false for done goals", func(t *testing.T) {
		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if IsGoalOverdue(newGoal(entity.GoalStatusDone, &due), today) {
			t.Error("done goal must not be overdue")
		}
	})
}

func checkinOn(habitID uuid.UUID, date time.Time, completed bool) *entity.HabitCheckin {
	return entity.NewHabitCheckin(habitID, date, completed, "", entity.SourceApp)
}

func TestStreak(t *testing.T) {
	habitID := uuid.New()
	today := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	t.Run("empty ledger yields zero", func(t *testing.T) {
		if got := Streak(nil, today); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("counts consecutive days ending today", func(t *testing.T) {
		checkins := []*entity.HabitCheckin{
			checkinOn(habitID, day(0), true),
			checkinOn(habitID, day(-1), true),
			checkinOn(habitID, day(-2), true),
			checkinOn(habitID, day(-4), true), // gap at -3
		}
		if got := Streak(checkins, today); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("yesterday completion keeps streak alive when today is pending", func(t *testing.T) {
		checkins := []*entity.HabitCheckin{
			checkinOn(habitID, day(-1), true),
			checkinOn(habitID, day(-2), true),
		}
		if got := Streak(checkins, today); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("uncompleted rows break the streak", func(t *testing.T) {
		checkins := []*entity.HabitCheckin{
			checkinOn(habitID, day(0), true),
			checkinOn(habitID, day(-1), false), // toggled off
			checkinOn(habitID, day(-2), true),
		}
		if got := Streak(checkins, today); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})
}

func TestWeeklyRate(t *testing.T) {
	habitID := uuid.New()
	today := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	t.Run("full week is 100", func(t *testing.T) {
		var checkins []*entity.HabitCheckin
		for i := 0; i < 7; i++ {
			checkins = append(checkins, checkinOn(habitID, day(-i), true))
		}
		if got := WeeklyRate(checkins, today); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("three of seven rounds to 43", func(t *testing.T) {
		checkins := []*entity.HabitCheckin{
			checkinOn(habitID, day(0), true),
			checkinOn(habitID, day(-2), true),
			checkinOn(habitID, day(-5), true),
		}
		if got := WeeklyRate(checkins, today); got != 43 {
			t.Errorf("expected 43, got %d", got)
		}
	})

	t.Run("completions older than a week are ignored", func(t *testing.T) {
		checkins := []*entity.HabitCheckin{
			checkinOn(habitID, day(-8), true),
			checkinOn(habitID, day(-30), true),
		}
		if got := WeeklyRate(checkins, today); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}
