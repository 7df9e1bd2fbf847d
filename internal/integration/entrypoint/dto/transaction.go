package dto

import (
	"time"

	"github.com/lifehub/backend/internal/application/usecase/transaction"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string  `json:"type" binding:"required,oneof=expense income"`
	Description   string  `json:"description" binding:"required,min=1,max=255"`
	Amount        string  `json:"amount" binding:"required"`
	CategoryID    *string `json:"category_id,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash debit_card credit_card pix transfer other"`
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	IsLoan        bool    `json:"is_loan,omitempty"`
	LoanContact   string  `json:"loan_contact,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description   *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *string `json:"amount,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	ClearCategory bool    `json:"clear_category,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty" binding:"omitempty,oneof=cash debit_card credit_card pix transfer other"`
	Date          *string `json:"date,omitempty"` // YYYY-MM-DD
}

// ImportTransactionItemRequest represents one item in a bulk import request.
type ImportTransactionItemRequest struct {
	Type          string  `json:"type" binding:"required,oneof=expense income"`
	Description   string  `json:"description" binding:"required,min=1,max=255"`
	Amount        string  `json:"amount" binding:"required"`
	CategoryID    *string `json:"category_id,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash debit_card credit_card pix transfer other"`
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	Installments  int     `json:"installments,omitempty" binding:"omitempty,min=1,max=48"`
}

// ImportTransactionsRequest represents the request body for a bulk import.
type ImportTransactionsRequest struct {
	Items []ImportTransactionItemRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// ListTransactionsQuery represents the query parameters for listing transactions.
type ListTransactionsQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	CategoryID string `form:"category_id"`
	Type       string `form:"type" binding:"omitempty,oneof=expense income"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	Amount            string    `json:"amount"`
	CategoryID        *string   `json:"category_id,omitempty"`
	PaymentMethod     string    `json:"payment_method"`
	Date              string    `json:"date"`
	InstallmentCount  int       `json:"installment_count"`
	InstallmentNumber int       `json:"installment_number"`
	IsLoan            bool      `json:"is_loan"`
	LoanContact       string    `json:"loan_contact,omitempty"`
	Source            string    `json:"source"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MilestoneEventResponse reports a finance goal milestone crossed by a write.
type MilestoneEventResponse struct {
	GoalID      string `json:"goal_id"`
	GoalName    string `json:"goal_name"`
	GoalType    string `json:"goal_type"`
	Milestone   string `json:"milestone"`
	NewProgress int    `json:"new_progress"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction TransactionResponse      `json:"transaction"`
	Milestones  []MilestoneEventResponse `json:"milestones,omitempty"`
}

// ImportTransactionsResponse represents the response for a bulk import.
type ImportTransactionsResponse struct {
	Created    []TransactionResponse    `json:"created"`
	Count      int                      `json:"count"`
	Milestones []MilestoneEventResponse `json:"milestones,omitempty"`
}

// TransactionListResponse represents the paginated response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ToTransactionResponse converts a domain Transaction entity to its DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                t.ID.String(),
		UserID:            t.UserID.String(),
		Type:              string(t.Type),
		Description:       t.Description,
		Amount:            t.Amount.StringFixed(2),
		PaymentMethod:     string(t.PaymentMethod),
		Date:              t.Date.Format("2006-01-02"),
		InstallmentCount:  t.InstallmentCount,
		InstallmentNumber: t.InstallmentNumber,
		IsLoan:            t.IsLoan,
		LoanContact:       t.LoanContact,
		Source:            string(t.Source),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}

	if t.CategoryID != nil {
		idStr := t.CategoryID.String()
		response.CategoryID = &idStr
	}

	return response
}

// ToMilestoneEventResponses converts milestone events emitted by a write.
func ToMilestoneEventResponses(events []valueobject.MilestoneEvent) []MilestoneEventResponse {
	if len(events) == 0 {
		return nil
	}
	out := make([]MilestoneEventResponse, len(events))
	for i, e := range events {
		out[i] = MilestoneEventResponse{
			GoalID:      e.GoalID.String(),
			GoalName:    e.GoalName,
			GoalType:    string(e.GoalType),
			Milestone:   string(e.Milestone),
			NewProgress: e.NewProgress,
		}
	}
	return out
}

// ToTransactionListResponse converts a paginated listing result to its DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, t := range result.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}
}

// ToImportTransactionsResponse converts a bulk import result to its DTO.
func ToImportTransactionsResponse(out *transaction.ImportTransactionsOutput) ImportTransactionsResponse {
	created := make([]TransactionResponse, len(out.Created))
	for i, t := range out.Created {
		created[i] = ToTransactionResponse(t)
	}
	return ImportTransactionsResponse{
		Created:    created,
		Count:      len(created),
		Milestones: ToMilestoneEventResponses(out.Milestones),
	}
}
