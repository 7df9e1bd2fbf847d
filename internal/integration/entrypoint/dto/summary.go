package dto

import (
	"github.com/lifehub/backend/internal/application/usecase/summary"
)

// GoalsSummaryResponse represents the active-goals dashboard card.
type GoalsSummaryResponse struct {
	Goals           []GoalResponse `json:"goals"`
	TotalActive     int            `json:"total_active"`
	CompletedCount  int            `json:"completed_count"`
	OverdueCount    int            `json:"overdue_count"`
	AverageProgress int            `json:"average_progress"`
	CacheVersion    int64          `json:"cache_version"`
}

// HabitsSummaryResponse represents the habits-today dashboard card.
type HabitsSummaryResponse struct {
	Habits         []HabitResponse `json:"habits"`
	TotalActive    int             `json:"total_active"`
	CompletedToday int             `json:"completed_today"`
	BestStreak     int             `json:"best_streak"`
	CacheVersion   int64           `json:"cache_version"`
}

// ToGoalsSummaryResponse converts the goals summary output to its DTO.
func ToGoalsSummaryResponse(out *summary.GoalsSummaryOutput) GoalsSummaryResponse {
	goals := make([]GoalResponse, len(out.Active))
	for i, g := range out.Active {
		goals[i] = ToGoalResponseWithProgress(g)
	}
	return GoalsSummaryResponse{
		Goals:           goals,
		TotalActive:     out.TotalActive,
		CompletedCount:  out.CompletedCount,
		OverdueCount:    out.OverdueCount,
		AverageProgress: out.AverageProgress,
		CacheVersion:    out.CacheVersion,
	}
}

// ToHabitsSummaryResponse converts the habits summary output to its DTO.
func ToHabitsSummaryResponse(out *summary.HabitsSummaryOutput) HabitsSummaryResponse {
	habits := make([]HabitResponse, len(out.Habits))
	for i, h := range out.Habits {
		habits[i] = ToHabitResponseWithStats(h)
	}
	return HabitsSummaryResponse{
		Habits:         habits,
		TotalActive:    out.TotalActive,
		CompletedToday: out.CompletedToday,
		BestStreak:     out.BestStreak,
		CacheVersion:   out.CacheVersion,
	}
}
