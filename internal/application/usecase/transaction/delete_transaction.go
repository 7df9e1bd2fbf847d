package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/valueobject"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Milestones []valueobject.MilestoneEvent
}

// DeleteTransactionUseCase handles transaction deletion. Removal changes the
// derived finance-goal amounts, so the recompute scan runs here too.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	sync            *sync.Orchestrator
	notifier        *MilestoneNotifier
	cache           adapter.CacheInvalidator
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	syncOrchestrator *sync.Orchestrator,
	notifier *MilestoneNotifier,
	cache adapter.CacheInvalidator,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		sync:            syncOrchestrator,
		notifier:        notifier,
		cache:           cache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := findOwnedTransaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	milestones := afterLedgerWrite(ctx, uc.sync, uc.notifier, uc.cache, input.UserID)

	return &DeleteTransactionOutput{
		Milestones: milestones,
	}, nil
}
