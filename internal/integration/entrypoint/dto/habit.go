// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifehub/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Category     string `json:"category,omitempty"`
	Frequency    string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
	WeeklyTarget *int   `json:"weekly_target,omitempty" binding:"omitempty,min=1,max=7"`
	Color        string `json:"color,omitempty"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Category     *string `json:"category,omitempty"`
	Frequency    *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
	WeeklyTarget *int    `json:"weekly_target,omitempty" binding:"omitempty,min=1,max=7"`
	Color        *string `json:"color,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// ToggleCheckinRequest represents the request body for a check-in toggle.
type ToggleCheckinRequest struct {
	Date *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Note string  `json:"note,omitempty"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Frequency      string    `json:"frequency"`
	WeeklyTarget   int       `json:"weekly_target"`
	Active         bool      `json:"active"`
	Color          string    `json:"color"`
	Streak         int       `json:"streak"`
	WeeklyRate     int       `json:"weekly_rate"`
	CompletedToday bool      `json:"completed_today"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// CheckinResponse represents a habit check-in in API responses.
type CheckinResponse struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Note      string `json:"note,omitempty"`
	Source    string `json:"source"`
}

// DeleteHabitResponse reports whether the habit was archived or removed.
type DeleteHabitResponse struct {
	Archived bool `json:"archived"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:           h.ID.String(),
		UserID:       h.UserID.String(),
		Name:         h.Name,
		Category:     h.Category,
		Frequency:    string(h.Frequency),
		WeeklyTarget: h.WeeklyTarget,
		Active:       h.Active,
		Color:        h.Color,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

// ToHabitResponseWithStats converts a HabitWithStats to a HabitResponse DTO.
func ToHabitResponseWithStats(h *entity.HabitWithStats) HabitResponse {
	response := ToHabitResponse(h.Habit)
	response.Streak = h.Streak
	response.WeeklyRate = h.WeeklyRate
	response.CompletedToday = h.CompletedToday
	return response
}

// ToHabitListResponse converts habits with stats to a HabitListResponse.
func ToHabitListResponse(habits []*entity.HabitWithStats) HabitListResponse {
	out := make([]HabitResponse, len(habits))
	for i, h := range habits {
		out[i] = ToHabitResponseWithStats(h)
	}
	return HabitListResponse{
		Habits: out,
	}
}

// ToCheckinResponse converts a domain HabitCheckin entity to its DTO.
func ToCheckinResponse(c *entity.HabitCheckin) CheckinResponse {
	return CheckinResponse{
		ID:        c.ID.String(),
		HabitID:   c.HabitID.String(),
		Date:      c.Date.Format("2006-01-02"),
		Completed: c.Completed,
		Note:      c.Note,
		Source:    string(c.Source),
	}
}
