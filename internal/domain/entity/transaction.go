// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodOther      PaymentMethod = "other"
)

// Transaction represents a financial transaction. Posting one is the trigger
// event for finance-goal recomputation.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              TransactionType
	Description       string
	Amount            decimal.Decimal // Always positive; Type carries the sign
	CategoryID        *uuid.UUID      // Optional, can be uncategorized
	PaymentMethod     PaymentMethod
	Date              time.Time
	InstallmentCount  int // Total parcels for credit-card purchases, 1 otherwise
	InstallmentNumber int // 1-based parcel index
	IsLoan            bool
	LoanContact       string
	Source            Source
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	description string,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	paymentMethod PaymentMethod,
	date time.Time,
	source Source,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              transactionType,
		Description:       description,
		Amount:            amount,
		CategoryID:        categoryID,
		PaymentMethod:     paymentMethod,
		Date:              date,
		InstallmentCount:  1,
		InstallmentNumber: 1,
		Source:            source,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
