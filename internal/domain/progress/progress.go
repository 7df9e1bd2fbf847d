// Package progress contains the pure computations behind goal percentages,
// overdue detection and habit streak statistics. No I/O happens here.
package progress

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/domain/entity"
)

// Calculate returns the clamped percent-complete for a goal: 0 when the
// target is missing or zero, otherwise min(round(current/target*100), 100).
// Never negative, never above 100.
func Calculate(currentValue float64, targetValue *float64) int {
	if targetValue == nil || *targetValue == 0 {
		return 0
	}
	return clamp(Raw(currentValue, *targetValue))
}

// Raw returns the unclamped integer percentage current/target*100. Used for
// milestone edge detection, where values above 100 ("exceeded") matter.
func Raw(currentValue, targetValue float64) int {
	if targetValue == 0 {
		return 0
	}
	return int(math.Round(currentValue / targetValue * 100))
}

// Finance returns the clamped percent-complete for a monetary amount pair.
func Finance(current, target decimal.Decimal) int {
	return clamp(FinanceRaw(current, target))
}

// FinanceRaw returns the unclamped integer percentage for a monetary pair.
func FinanceRaw(current, target decimal.Decimal) int {
	if target.IsZero() {
		return 0
	}
	ratio, _ := current.Div(target).Mul(decimal.NewFromInt(100)).Round(0).Float64()
	return int(ratio)
}

// IsGoalOverdue reports whether an active goal's due date has passed.
// The comparison is date-only: a goal due today is not overdue.
func IsGoalOverdue(goal *entity.Goal, today time.Time) bool {
	if goal.Status != entity.GoalStatusActive || goal.DueDate == nil {
		return false
	}
	return entity.DateOnly(*goal.DueDate).Before(entity.DateOnly(today))
}

// Streak counts consecutive completed days walking backward from today.
// A day without a completion yet today does not break the streak: the walk
// then starts from yesterday instead.
func Streak(checkins []*entity.HabitCheckin, today time.Time) int {
	completed := completedDates(checkins)

	day := entity.DateOnly(today)
	if !completed[day] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for completed[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyRate returns the percentage of the last 7 calendar days (inclusive of
// today) with a completed check-in, rounded to the nearest integer.
func WeeklyRate(checkins []*entity.HabitCheckin, today time.Time) int {
	completed := completedDates(checkins)

	count := 0
	day := entity.DateOnly(today)
	for i := 0; i < 7; i++ {
		if completed[day] {
			count++
		}
		day = day.AddDate(0, 0, -1)
	}
	return int(math.Round(float64(count) / 7 * 100))
}

// completedDates collects the set of dates with a completed check-in.
func completedDates(checkins []*entity.HabitCheckin) map[time.Time]bool {
	dates := make(map[time.Time]bool, len(checkins))
	for _, c := range checkins {
		if c.Completed {
			dates[entity.DateOnly(c.Date)] = true
		}
	}
	return dates
}

func clamp(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
