// Package transaction contains transaction-related use cases. Every ledger
// write triggers the finance-goal recompute scan through the sync
// orchestrator, which may surface milestone notifications.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Type          entity.TransactionType
	Description   string
	Amount        decimal.Decimal
	CategoryID    *uuid.UUID
	PaymentMethod entity.PaymentMethod
	Date          time.Time
	IsLoan        bool
	LoanContact   string
	Source        entity.Source
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Milestones  []valueobject.MilestoneEvent
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	sync            *sync.Orchestrator
	notifier        *MilestoneNotifier
	cache           adapter.CacheInvalidator
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	syncOrchestrator *sync.Orchestrator,
	notifier *MilestoneNotifier,
	cache adapter.CacheInvalidator,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		sync:            syncOrchestrator,
		notifier:        notifier,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Description, input.Amount, input.Date); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := validateCategoryOwnership(ctx, uc.categoryRepo, input.UserID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	source := input.Source
	if source == "" {
		source = entity.SourceApp
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		input.Description,
		input.Amount,
		input.CategoryID,
		paymentMethodOrDefault(input.PaymentMethod),
		input.Date,
		source,
	)
	transaction.IsLoan = input.IsLoan
	transaction.LoanContact = input.LoanContact

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	milestones := afterLedgerWrite(ctx, uc.sync, uc.notifier, uc.cache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: transaction,
		Milestones:  milestones,
	}, nil
}

// validateTransactionFields checks the fields shared by create and update.
func validateTransactionFields(transactionType entity.TransactionType, description string, amount decimal.Decimal, date time.Time) error {
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}

// validateCategoryOwnership checks that a category exists and belongs to the user.
func validateCategoryOwnership(ctx context.Context, categoryRepo adapter.CategoryRepository, userID, categoryID uuid.UUID) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if category.UserID != userID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}

	return nil
}

// paymentMethodOrDefault falls back to 'other' when no method was given.
func paymentMethodOrDefault(method entity.PaymentMethod) entity.PaymentMethod {
	if method == "" {
		return entity.PaymentMethodOther
	}
	return method
}
