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

const maxInstallments = 48

// ImportTransactionItem is one row of an import payload.
type ImportTransactionItem struct {
	Type          entity.TransactionType
	Description   string
	Amount        decimal.Decimal
	CategoryID    *uuid.UUID
	PaymentMethod entity.PaymentMethod
	Date          time.Time
	Installments  int // 0 or 1 means a single charge
}

// ImportTransactionsInput represents the input for a bulk transaction import.
type ImportTransactionsInput struct {
	UserID uuid.UUID
	Items  []ImportTransactionItem
	Source entity.Source
}

// ImportTransactionsOutput represents the output of a bulk transaction import.
type ImportTransactionsOutput struct {
	Created    []*entity.Transaction
	Milestones []valueobject.MilestoneEvent
}

// ImportTransactionsUseCase imports a batch of transactions in one database
// transaction. Credit-card purchases with installments expand into one parcel
// per month, each carrying the divided amount.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	sync            *sync.Orchestrator
	notifier        *MilestoneNotifier
	cache           adapter.CacheInvalidator
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	syncOrchestrator *sync.Orchestrator,
	notifier *MilestoneNotifier,
	cache adapter.CacheInvalidator,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		sync:            syncOrchestrator,
		notifier:        notifier,
		cache:           cache,
	}
}

// Execute performs the bulk import.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyImport,
			"import payload cannot be empty",
			domainerror.ErrEmptyImport,
		)
	}

	source := input.Source
	if source == "" {
		source = entity.SourceIntegration
	}

	var batch []*entity.Transaction
	for i, item := range input.Items {
		expanded, err := uc.expandItem(ctx, input.UserID, item, source)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		batch = append(batch, expanded...)
	}

	if err := uc.transactionRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to import transactions: %w", err)
	}

	milestones := afterLedgerWrite(ctx, uc.sync, uc.notifier, uc.cache, input.UserID)

	return &ImportTransactionsOutput{
		Created:    batch,
		Milestones: milestones,
	}, nil
}

// expandItem validates one import row and expands installments into parcels.
func (uc *ImportTransactionsUseCase) expandItem(ctx context.Context, userID uuid.UUID, item ImportTransactionItem, source entity.Source) ([]*entity.Transaction, error) {
	if err := validateTransactionFields(item.Type, item.Description, item.Amount, item.Date); err != nil {
		return nil, err
	}
	if item.CategoryID != nil {
		if err := validateCategoryOwnership(ctx, uc.categoryRepo, userID, *item.CategoryID); err != nil {
			return nil, err
		}
	}

	installments := item.Installments
	if installments <= 1 {
		transaction := entity.NewTransaction(
			userID, item.Type, item.Description, item.Amount,
			item.CategoryID, paymentMethodOrDefault(item.PaymentMethod), item.Date, source,
		)
		return []*entity.Transaction{transaction}, nil
	}

	if installments > maxInstallments {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInstallments,
			fmt.Sprintf("installments must not exceed %d", maxInstallments),
			domainerror.ErrInvalidInstallments,
		)
	}
	if item.PaymentMethod != entity.PaymentMethodCreditCard {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInstallments,
			"installments are only supported for credit card purchases",
			domainerror.ErrInvalidInstallments,
		)
	}

	// The last parcel absorbs the rounding remainder so the parcels sum back
	// to the original amount.
	count := decimal.NewFromInt(int64(installments))
	parcelAmount := item.Amount.Div(count).Round(2)
	lastAmount := item.Amount.Sub(parcelAmount.Mul(decimal.NewFromInt(int64(installments - 1))))

	parcels := make([]*entity.Transaction, 0, installments)
	for n := 1; n <= installments; n++ {
		amount := parcelAmount
		if n == installments {
			amount = lastAmount
		}

		description := fmt.Sprintf("%s (%d/%d)", item.Description, n, installments)
		parcel := entity.NewTransaction(
			userID, item.Type, description, amount,
			item.CategoryID, entity.PaymentMethodCreditCard,
			item.Date.AddDate(0, n-1, 0), source,
		)
		parcel.InstallmentCount = installments
		parcel.InstallmentNumber = n
		parcels = append(parcels, parcel)
	}

	return parcels, nil
}
