// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifehub/backend/internal/application/usecase/goal"
	"github.com/lifehub/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Type        string   `json:"type" binding:"required"`
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description,omitempty"`
	TargetValue *float64 `json:"target_value,omitempty" binding:"omitempty,gt=0"`
	Unit        string   `json:"unit,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"` // YYYY-MM-DD
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	TargetValue *float64 `json:"target_value,omitempty" binding:"omitempty,gt=0"`
	Unit        *string  `json:"unit,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"` // YYYY-MM-DD
	ClearDue    bool     `json:"clear_due,omitempty"`
}

// UpdateGoalStatusRequest represents the request body for status change.
type UpdateGoalStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active done archived"`
}

// AddProgressRequest represents the request body for a progress ledger entry.
type AddProgressRequest struct {
	DeltaValue float64 `json:"delta_value" binding:"required"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Note       string  `json:"note,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Type                string    `json:"type"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	TargetValue         *float64  `json:"target_value,omitempty"`
	CurrentValue        float64   `json:"current_value"`
	Unit                string    `json:"unit,omitempty"`
	DueDate             *string   `json:"due_date,omitempty"`
	Status              string    `json:"status"`
	Progress            int       `json:"progress"`
	IsOverdue           bool      `json:"is_overdue"`
	LinkedFinanceGoalID *string   `json:"linked_finance_goal_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ProgressEntryResponse represents a progress ledger entry in API responses.
type ProgressEntryResponse struct {
	ID         string    `json:"id"`
	GoalID     string    `json:"goal_id"`
	Date       string    `json:"date"`
	DeltaValue float64   `json:"delta_value"`
	Note       string    `json:"note,omitempty"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// GoalDetailResponse represents a goal together with its progress ledger.
type GoalDetailResponse struct {
	GoalResponse
	Entries []ProgressEntryResponse `json:"entries"`
}

// AddProgressResponse represents the response for a progress ledger write.
type AddProgressResponse struct {
	Goal  GoalResponse          `json:"goal"`
	Entry ProgressEntryResponse `json:"entry"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, progress int, isOverdue bool) GoalResponse {
	response := GoalResponse{
		ID:           g.ID.String(),
		UserID:       g.UserID.String(),
		Type:         string(g.Type),
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Status:       string(g.Status),
		Progress:     progress,
		IsOverdue:    isOverdue,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if g.DueDate != nil {
		dateStr := g.DueDate.Format("2006-01-02")
		response.DueDate = &dateStr
	}
	if g.LinkedFinanceGoalID != nil {
		idStr := g.LinkedFinanceGoalID.String()
		response.LinkedFinanceGoalID = &idStr
	}

	return response
}

// ToGoalResponseWithProgress converts a GoalWithProgress to its DTO.
func ToGoalResponseWithProgress(g goal.GoalWithProgress) GoalResponse {
	return ToGoalResponse(g.Goal, g.Progress, g.IsOverdue)
}

// ToGoalListResponse converts listed goals to a GoalListResponse.
func ToGoalListResponse(goals []goal.GoalWithProgress) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalResponse(g.Goal, g.Progress, g.IsOverdue)
	}
	return GoalListResponse{
		Goals: out,
	}
}

// ToProgressEntryResponse converts a ledger entry to its DTO.
func ToProgressEntryResponse(entry *entity.GoalProgress) ProgressEntryResponse {
	return ProgressEntryResponse{
		ID:         entry.ID.String(),
		GoalID:     entry.GoalID.String(),
		Date:       entry.Date.Format("2006-01-02"),
		DeltaValue: entry.DeltaValue,
		Note:       entry.Note,
		Source:     string(entry.Source),
		CreatedAt:  entry.CreatedAt,
	}
}

// ToGoalDetailResponse converts a GetGoalOutput to a GoalDetailResponse.
func ToGoalDetailResponse(output *goal.GetGoalOutput) GoalDetailResponse {
	entries := make([]ProgressEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = ToProgressEntryResponse(entry)
	}
	return GoalDetailResponse{
		GoalResponse: ToGoalResponse(output.Goal, output.Progress, output.IsOverdue),
		Entries:      entries,
	}
}
