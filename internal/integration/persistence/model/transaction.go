// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifehub/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type              string          `gorm:"type:varchar(10);not null;index"`
	Description       string          `gorm:"type:varchar(255);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMethod     string          `gorm:"type:varchar(20);not null;default:'other'"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	InstallmentCount  int             `gorm:"not null;default:1"`
	InstallmentNumber int             `gorm:"not null;default:1"`
	IsLoan            bool            `gorm:"default:false"`
	LoanContact       string          `gorm:"type:varchar(255)"`
	Source            string          `gorm:"type:varchar(20);not null;default:'app'"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              entity.TransactionType(m.Type),
		Description:       m.Description,
		Amount:            m.Amount,
		CategoryID:        m.CategoryID,
		PaymentMethod:     entity.PaymentMethod(m.PaymentMethod),
		Date:              m.Date,
		InstallmentCount:  m.InstallmentCount,
		InstallmentNumber: m.InstallmentNumber,
		IsLoan:            m.IsLoan,
		LoanContact:       m.LoanContact,
		Source:            entity.Source(m.Source),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		Type:              string(transaction.Type),
		Description:       transaction.Description,
		Amount:            transaction.Amount,
		CategoryID:        transaction.CategoryID,
		PaymentMethod:     string(transaction.PaymentMethod),
		Date:              transaction.Date,
		InstallmentCount:  transaction.InstallmentCount,
		InstallmentNumber: transaction.InstallmentNumber,
		IsLoan:            transaction.IsLoan,
		LoanContact:       transaction.LoanContact,
		Source:            string(transaction.Source),
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
