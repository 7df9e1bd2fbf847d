// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifehub/backend/internal/application/usecase/financegoal"
	"github.com/lifehub/backend/internal/domain/entity"
)

// CreateFinanceGoalRequest represents the request body for finance goal creation.
type CreateFinanceGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	Type         string  `json:"type" binding:"required,oneof=savings expense_limit income_target emergency_fund"`
	TargetAmount string  `json:"target_amount" binding:"required"`
	Deadline     *string `json:"deadline,omitempty"` // YYYY-MM-DD
}

// UpdateFinanceGoalRequest represents the request body for finance goal update.
type UpdateFinanceGoalRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount  *string `json:"target_amount,omitempty"`
	CurrentAmount *string `json:"current_amount,omitempty"` // Manual correction
	Deadline      *string `json:"deadline,omitempty"`       // YYYY-MM-DD
	ClearDeadline bool    `json:"clear_deadline,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// FinanceGoalResponse represents a single finance goal in API responses.
type FinanceGoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	IsActive      bool      `json:"is_active"`
	Progress      int       `json:"progress"`
	Remaining     string    `json:"remaining"`
	Band          string    `json:"band,omitempty"`
	LinkedGoalID  *string   `json:"linked_goal_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FinanceGoalListResponse represents the response for listing finance goals.
type FinanceGoalListResponse struct {
	FinanceGoals []FinanceGoalResponse `json:"finance_goals"`
}

// ToFinanceGoalResponse converts a domain FinanceGoal entity to its DTO.
func ToFinanceGoalResponse(g *entity.FinanceGoal) FinanceGoalResponse {
	response := FinanceGoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		Type:          string(g.Type),
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		IsActive:      g.IsActive,
		Remaining:     g.TargetAmount.Sub(g.CurrentAmount).StringFixed(2),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.Deadline != nil {
		dateStr := g.Deadline.Format("2006-01-02")
		response.Deadline = &dateStr
	}
	if g.LinkedGoalID != nil {
		idStr := g.LinkedGoalID.String()
		response.LinkedGoalID = &idStr
	}

	return response
}

// ToFinanceGoalResponseWithProgress converts a FinanceGoalWithProgress to its DTO.
func ToFinanceGoalResponseWithProgress(g financegoal.FinanceGoalWithProgress) FinanceGoalResponse {
	response := ToFinanceGoalResponse(g.FinanceGoal)
	response.Progress = g.Progress
	response.Remaining = g.Remaining.StringFixed(2)
	response.Band = string(g.Band)
	return response
}

// ToFinanceGoalListResponse converts listed finance goals to a FinanceGoalListResponse.
func ToFinanceGoalListResponse(goals []financegoal.FinanceGoalWithProgress) FinanceGoalListResponse {
	out := make([]FinanceGoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToFinanceGoalResponseWithProgress(g)
	}
	return FinanceGoalListResponse{
		FinanceGoals: out,
	}
}
